package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/raulk/clock"

	"github.com/heartmarshall/keepit-backend/internal/domain"
	"github.com/heartmarshall/keepit-backend/internal/metrics"
)

type userChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type notificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// Dispatcher delivers notifications: a durable insert followed by a
// best-effort push to the recipient's live channel.
type Dispatcher struct {
	users    userChecker
	store    notificationStore
	registry *Registry
	clock    clock.Clock
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	log *slog.Logger,
	users userChecker,
	store notificationStore,
	registry *Registry,
	clk clock.Clock,
	m *metrics.Metrics,
) *Dispatcher {
	return &Dispatcher{
		users:    users,
		store:    store,
		registry: registry,
		clock:    clk,
		metrics:  m,
		log:      log.With("service", "dispatcher"),
	}
}

// Send persists a notification for userID and pushes it if the user is connected.
// Push failures are never returned. Callers that write inside a transaction use
// the split form instead: Persist in the transaction, PushAll after commit.
func (d *Dispatcher) Send(ctx context.Context, userID uuid.UUID, message string) (*domain.Notification, error) {
	n, err := d.Persist(ctx, userID, message)
	if err != nil {
		return nil, err
	}
	d.Push(ctx, n)
	return n, nil
}

// Persist stores a notification without pushing it. When ctx carries a
// transaction the insert joins it; callers push after commit.
func (d *Dispatcher) Persist(ctx context.Context, userID uuid.UUID, message string) (*domain.Notification, error) {
	exists, err := d.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check recipient: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	n := &domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		CreatedAt: d.clock.Now().UTC(),
	}
	if err := d.store.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	d.metrics.NotificationsPersisted.Inc()
	return n, nil
}

// Push hands n to the recipient's live channel, if any. A failed push
// releases the channel so the client reconnects.
func (d *Dispatcher) Push(ctx context.Context, n *domain.Notification) {
	ch, ok := d.registry.Lookup(n.UserID)
	if !ok {
		return
	}

	if err := ch.Send(domain.NotificationEvent(n)); err != nil {
		d.metrics.PushDropped.Inc()
		d.registry.Release(ch)
		d.log.WarnContext(ctx, "live push dropped",
			slog.String("user_id", n.UserID.String()),
			slog.String("notification_id", n.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	d.metrics.NotificationsPushed.Inc()
}

// PushAll pushes every notification in order.
func (d *Dispatcher) PushAll(ctx context.Context, ns []*domain.Notification) {
	for _, n := range ns {
		d.Push(ctx, n)
	}
}
