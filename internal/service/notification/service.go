package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raulk/clock"

	"github.com/heartmarshall/keepit-backend/internal/domain"
	"github.com/heartmarshall/keepit-backend/pkg/ctxutil"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type notificationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service exposes a user's own notifications.
type Service struct {
	repo  notificationRepo
	clock clock.Clock
	log   *slog.Logger
}

// NewService creates a notification Service.
func NewService(log *slog.Logger, repo notificationRepo, clk clock.Clock) *Service {
	return &Service{
		repo:  repo,
		clock: clk,
		log:   log.With("service", "notification"),
	}
}

// View is a notification as listed to its owner.
type View struct {
	domain.Notification
	HoursElapsed int
}

// ListInput holds the parameters for listing notifications.
type ListInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns the caller's notifications, newest first, with the whole
// hours elapsed since each was created.
func (s *Service) List(ctx context.Context, input ListInput) ([]View, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	items, err := s.repo.ListByUser(ctx, userID, input.UnreadOnly, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	now := s.clock.Now()
	views := make([]View, 0, len(items))
	for i := range items {
		views = append(views, View{Notification: items[i], HoursElapsed: items[i].HoursElapsed(now)})
	}
	return views, nil
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// MarkRead flags one of the caller's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// MarkAllRead flags all of the caller's notifications as read.
func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int64("count", n),
	)
	return n, nil
}

// Delete removes one of the caller's notifications.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// Cleanup deletes read notifications older than retention.
func (s *Service) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, domain.NewValidationError("retention", "must be positive")
	}

	cutoff := s.clock.Now().Add(-retention)
	n, err := s.repo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup notifications: %w", err)
	}

	s.log.InfoContext(ctx, "read notifications cleaned up",
		slog.Time("cutoff", cutoff),
		slog.Int64("deleted", n),
	)
	return n, nil
}
