package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// CompleteStorage records that the caller considers storage finished. The
// matching becomes COMPLETED once both parties have done so; until then the
// other party is asked to confirm.
func (s *Service) CompleteStorage(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error) {
	return s.apply(ctx, "completion marked", matchingID, func(ctx context.Context, m *domain.Matching) ([]message, error) {
		side, err := m.SideOf(actor)
		if err != nil {
			return nil, err
		}

		done, err := m.MarkCompleted(side)
		if err != nil {
			return nil, err
		}

		other := m.OwnerOf(side.Other())
		if done {
			// The other side marked first and is waiting on this call.
			return []message{{to: other, text: completedMessage(m.ProductName)}}, nil
		}

		name, err := s.nameOf(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		return []message{{to: other, text: halfCompletedMessage(name)}}, nil
	})
}
