package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// GuestConfirmStorage starts storage today: PENDING → STORED. The expiry date
// is today plus the shorter of the product's and the place's periods.
func (s *Service) GuestConfirmStorage(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error) {
	return s.apply(ctx, "confirmed", matchingID, func(ctx context.Context, m *domain.Matching) ([]message, error) {
		if err := m.Authorize(actor, domain.UserRoleGuest); err != nil {
			return nil, err
		}
		if m.Status != domain.MatchingStatusPending {
			return nil, domain.IncorrectStatus(domain.MatchingStatusPending, m.Status)
		}
		if !m.HasPlace() {
			return nil, domain.NewTransitionError(domain.TransitionIncorrectStatus, "pending matching has no place")
		}

		product, err := s.products.GetByID(ctx, m.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load product: %w", err)
		}
		place, err := s.places.GetByID(ctx, *m.PlaceID)
		if err != nil {
			return nil, fmt.Errorf("load place: %w", err)
		}

		if err := m.Store(s.today(), domain.EffectivePeriod(product.PeriodDays, place.PeriodDays)); err != nil {
			return nil, err
		}

		guest, err := s.nameOf(ctx, m.GuestID)
		if err != nil {
			return nil, err
		}
		return []message{{to: m.HostID, text: confirmedMessage(guest, m.ProductName, *m.ExpiryDate)}}, nil
	})
}
