// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/keepit-backend/internal/domain"
)

var columns = []string{"id", "user_id", "message", "is_read", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Notification {
	return domain.Notification{
		ID:        r.ID,
		UserID:    r.UserID,
		Message:   r.Message,
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	sql, args, err := postgres.Builder().
		Insert("notifications").
		Columns(columns...).
		Values(n.ID, n.UserID, n.Message, n.IsRead, n.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}
	return nil
}

// GetByID returns a notification owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("notifications").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}

	n := rw.toDomain()
	return &n, nil
}

// ListByUser returns the user's notifications, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	q := postgres.Builder().
		Select(columns...).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if unreadOnly {
		q = q.Where(squirrel.Eq{"is_read": false})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "notifications of user", userID)
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// CountUnread returns the number of unread notifications of userID.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID,
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "notifications of user", userID)
	}
	return n, nil
}

// MarkRead flags a single notification owned by userID as read.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead flags every unread notification of userID and returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE user_id = $1 AND NOT is_read`, userID,
	)
	if err != nil {
		return 0, postgres.MapError(err, "notifications of user", userID)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a notification owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteReadOlderThan removes read notifications created before cutoff.
func (r *Repo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM notifications WHERE is_read AND created_at < $1`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
