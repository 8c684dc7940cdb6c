package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// Open creates an UNASSIGNED matching for one of the guest's products.
// A product has at most one live matching; a second Open fails with
// domain.ErrAlreadyExists.
func (s *Service) Open(ctx context.Context, actor domain.Actor, productID uuid.UUID) (*domain.Matching, error) {
	if productID == uuid.Nil {
		return nil, domain.NewValidationError("product_id", "required")
	}
	if actor.Role != domain.UserRoleGuest {
		return nil, domain.NotAuthorized(domain.UserRoleGuest)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product.OwnerID != actor.UserID {
		return nil, domain.NotAuthorized(domain.UserRoleGuest)
	}

	now := s.clock.Now().UTC()
	m := &domain.Matching{
		ID:          uuid.New(),
		ProductID:   product.ID,
		Status:      domain.MatchingStatusUnassigned,
		CreatedAt:   now,
		UpdatedAt:   now,
		GuestID:     product.OwnerID,
		ProductName: product.Name,
	}
	if err := s.matchings.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create matching: %w", err)
	}

	s.log.InfoContext(ctx, "matching opened",
		slog.String("matching_id", m.ID.String()),
		slog.String("product_id", product.ID.String()),
	)
	return m, nil
}

// Get returns a matching to either of its parties.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Matching, error) {
	m, err := s.matchings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := m.SideOf(actor); err != nil {
		return nil, err
	}
	return m, nil
}
