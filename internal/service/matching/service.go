package matching

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raulk/clock"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

type matchingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matching, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Matching, error)
	Create(ctx context.Context, m *domain.Matching) error
	UpdateState(ctx context.Context, id uuid.UUID, p domain.MatchingStateParams, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

type placeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Persist(ctx context.Context, userID uuid.UUID, message string) (*domain.Notification, error)
	PushAll(ctx context.Context, ns []*domain.Notification)
}

// Service drives matchings through their lifecycle on behalf of a guest or host.
type Service struct {
	matchings matchingRepo
	products  productRepo
	places    placeRepo
	users     userRepo
	tx        txManager
	notifier  notifier
	clock     clock.Clock
	loc       *time.Location
	log       *slog.Logger
}

// NewService creates a matching Service. loc decides which calendar day
// "today" is when storage starts.
func NewService(
	log *slog.Logger,
	matchings matchingRepo,
	products productRepo,
	places placeRepo,
	users userRepo,
	tx txManager,
	notifier notifier,
	clk clock.Clock,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		matchings: matchings,
		products:  products,
		places:    places,
		users:     users,
		tx:        tx,
		notifier:  notifier,
		clock:     clk,
		loc:       loc,
		log:       log.With("service", "matching"),
	}
}

// message is a notification queued by a transition.
type message struct {
	to   uuid.UUID
	text string
}

// transition mutates a locked matching and returns the notifications to send.
type transition func(ctx context.Context, m *domain.Matching) ([]message, error)

// apply locks the matching, runs fn, stores the new state and persists the
// notifications in one transaction. Pushes happen only after commit. A status
// change outside the transition table is refused before anything is written.
func (s *Service) apply(ctx context.Context, op string, id uuid.UUID, fn transition) (*domain.Matching, error) {
	var (
		result *domain.Matching
		sent   []*domain.Notification
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sent = nil

		m, err := s.matchings.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		before := m.Status

		msgs, err := fn(ctx, m)
		if err != nil {
			return err
		}
		if m.Status != before && !before.CanTransition(m.Status) {
			return domain.NewTransitionError(domain.TransitionIncorrectStatus,
				"matching cannot move from %s to %s", before, m.Status)
		}

		now := s.clock.Now().UTC()
		if err := s.matchings.UpdateState(ctx, m.ID, m.StateParams(), now); err != nil {
			return fmt.Errorf("update matching: %w", err)
		}
		m.UpdatedAt = now

		for _, msg := range msgs {
			n, err := s.notifier.Persist(ctx, msg.to, msg.text)
			if err != nil {
				return fmt.Errorf("notify %s: %w", msg.to, err)
			}
			sent = append(sent, n)
		}

		s.log.InfoContext(ctx, "matching "+op,
			slog.String("matching_id", m.ID.String()),
			slog.String("from", before.String()),
			slog.String("to", m.Status.String()),
		)

		result = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.PushAll(ctx, sent)
	return result, nil
}

// today is the current calendar day in the service location.
func (s *Service) today() time.Time {
	return domain.DateOf(s.clock.Now().In(s.loc))
}

func (s *Service) nameOf(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}
	return u.Name, nil
}
