package matching

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// CancelRequest backs out of an accepted request before storage starts:
// PENDING → REQUESTED. The place stays assigned and the other party is told.
func (s *Service) CancelRequest(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error) {
	return s.apply(ctx, "cancelled", matchingID, func(ctx context.Context, m *domain.Matching) ([]message, error) {
		side, err := m.SideOf(actor)
		if err != nil {
			return nil, err
		}
		if m.Status != domain.MatchingStatusPending {
			return nil, domain.NewTransitionError(domain.TransitionCancellationNotAllowed,
				"only a pending matching can be cancelled, is %s", m.Status)
		}

		m.Status = domain.MatchingStatusRequested

		name, err := s.nameOf(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		return []message{{to: m.OwnerOf(side.Other()), text: cancelledMessage(name, m.ProductName)}}, nil
	})
}

// Withdraw deletes the guest's matching before storage was agreed. A host
// holding an open request is told.
func (s *Service) Withdraw(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) error {
	var sent []*domain.Notification

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sent = nil

		m, err := s.matchings.GetByIDForUpdate(ctx, matchingID)
		if err != nil {
			return err
		}
		if err := m.Authorize(actor, domain.UserRoleGuest); err != nil {
			return err
		}
		if !m.Status.IsWithdrawable() {
			return domain.NewTransitionError(domain.TransitionCancellationNotAllowed,
				"matching can no longer be withdrawn, is %s", m.Status)
		}

		if err := s.matchings.Delete(ctx, m.ID); err != nil {
			return err
		}

		if m.Status == domain.MatchingStatusRequested {
			guest, err := s.nameOf(ctx, m.GuestID)
			if err != nil {
				return err
			}
			n, err := s.notifier.Persist(ctx, m.HostID, withdrawnMessage(guest, m.ProductName))
			if err != nil {
				return err
			}
			sent = append(sent, n)
		}

		s.log.InfoContext(ctx, "matching withdrawn",
			slog.String("matching_id", m.ID.String()),
			slog.String("status", m.Status.String()),
		)
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.PushAll(ctx, sent)
	return nil
}
