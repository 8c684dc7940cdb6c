package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// HostAcceptRequest answers a storage request. Accepting moves REQUESTED →
// PENDING and tells the guest; rejecting moves REQUESTED → REJECTED silently.
func (s *Service) HostAcceptRequest(ctx context.Context, actor domain.Actor, matchingID uuid.UUID, accepted bool) (*domain.Matching, error) {
	op := "rejected"
	if accepted {
		op = "accepted"
	}

	return s.apply(ctx, op, matchingID, func(ctx context.Context, m *domain.Matching) ([]message, error) {
		if err := m.Authorize(actor, domain.UserRoleHost); err != nil {
			return nil, err
		}
		if m.Status != domain.MatchingStatusRequested {
			return nil, domain.IncorrectStatus(domain.MatchingStatusRequested, m.Status)
		}

		if !accepted {
			m.Status = domain.MatchingStatusRejected
			return nil, nil
		}

		m.Status = domain.MatchingStatusPending
		host, err := s.nameOf(ctx, m.HostID)
		if err != nil {
			return nil, err
		}
		return []message{{to: m.GuestID, text: acceptedMessage(host, m.ProductName)}}, nil
	})
}
