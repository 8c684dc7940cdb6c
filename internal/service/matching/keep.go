package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// Keep assigns a place to the guest's matching and asks its host to store the
// product: UNASSIGNED → REQUESTED.
func (s *Service) Keep(ctx context.Context, actor domain.Actor, matchingID, placeID uuid.UUID) (*domain.Matching, error) {
	if placeID == uuid.Nil {
		return nil, domain.NewValidationError("place_id", "required")
	}

	return s.apply(ctx, "kept", matchingID, func(ctx context.Context, m *domain.Matching) ([]message, error) {
		if err := m.Authorize(actor, domain.UserRoleGuest); err != nil {
			return nil, err
		}
		if m.HasPlace() {
			return nil, domain.NewTransitionError(domain.TransitionPlaceAlreadyAssigned, "matching already has a place")
		}
		if m.Status != domain.MatchingStatusUnassigned {
			return nil, domain.IncorrectStatus(domain.MatchingStatusUnassigned, m.Status)
		}

		product, err := s.products.GetByID(ctx, m.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load product: %w", err)
		}
		place, err := s.places.GetByID(ctx, placeID)
		if err != nil {
			return nil, fmt.Errorf("load place: %w", err)
		}
		if product.PeriodDays > place.PeriodDays {
			return nil, domain.NewTransitionError(domain.TransitionPeriodExceeded,
				"product needs %d days, place offers %d", product.PeriodDays, place.PeriodDays)
		}

		m.PlaceID = &place.ID
		m.HostID = place.OwnerID
		m.PlaceName = place.Name
		m.Distance = domain.DistanceMeters(product.Latitude, product.Longitude, place.Latitude, place.Longitude)
		m.Status = domain.MatchingStatusRequested

		guest, err := s.nameOf(ctx, m.GuestID)
		if err != nil {
			return nil, err
		}
		return []message{{to: m.HostID, text: requestedMessage(guest, m.ProductName, m.PlaceName)}}, nil
	})
}
