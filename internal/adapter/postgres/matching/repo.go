// Package matching implements the Matching repository using PostgreSQL.
package matching

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

// Repo provides matching persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new matching repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID             uuid.UUID  `db:"id"`
	ProductID      uuid.UUID  `db:"product_id"`
	PlaceID        *uuid.UUID `db:"place_id"`
	Status         string     `db:"status"`
	HostCompleted  bool       `db:"host_completed"`
	GuestCompleted bool       `db:"guest_completed"`
	Distance       int        `db:"distance"`
	StartDate      *time.Time `db:"start_date"`
	ExpiryDate     *time.Time `db:"expiry_date"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	GuestID        uuid.UUID  `db:"guest_id"`
	HostID         *uuid.UUID `db:"host_id"`
	ProductName    string     `db:"product_name"`
	PlaceName      *string    `db:"place_name"`
}

func (r row) toDomain() domain.Matching {
	m := domain.Matching{
		ID:             r.ID,
		ProductID:      r.ProductID,
		PlaceID:        r.PlaceID,
		Status:         domain.MatchingStatus(r.Status),
		HostCompleted:  r.HostCompleted,
		GuestCompleted: r.GuestCompleted,
		Distance:       r.Distance,
		StartDate:      utcDate(r.StartDate),
		ExpiryDate:     utcDate(r.ExpiryDate),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		GuestID:        r.GuestID,
		ProductName:    r.ProductName,
	}
	if r.HostID != nil {
		m.HostID = *r.HostID
	}
	if r.PlaceName != nil {
		m.PlaceName = *r.PlaceName
	}
	return m
}

// utcDate normalizes a DATE column to midnight UTC.
func utcDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOf(*t)
	return &d
}

// selectMatchings joins the owning product and the (optional) place so every
// read carries both parties.
func selectMatchings() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"m.id", "m.product_id", "m.place_id", "m.status",
			"m.host_completed", "m.guest_completed", "m.distance",
			"m.start_date", "m.expiry_date", "m.created_at", "m.updated_at",
			"p.owner_id AS guest_id", "pl.owner_id AS host_id",
			"p.name AS product_name", "pl.name AS place_name",
		).
		From("matchings m").
		Join("products p ON p.id = m.product_id").
		LeftJoin("places pl ON pl.id = m.place_id")
}

// GetByID returns a matching by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matching, error) {
	return r.get(ctx, selectMatchings().Where(squirrel.Eq{"m.id": id}), id)
}

// GetByIDForUpdate returns a matching and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Matching, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("matching %s: lock requires a transaction", id)
	}
	return r.get(ctx, selectMatchings().Where(squirrel.Eq{"m.id": id}).Suffix("FOR UPDATE OF m"), id)
}

func (r *Repo) get(ctx context.Context, q squirrel.SelectBuilder, id uuid.UUID) (*domain.Matching, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "matching", id)
	}

	m := rw.toDomain()
	return &m, nil
}

// Create inserts a new UNASSIGNED matching for m.ProductID.
// Returns domain.ErrAlreadyExists if the product already has a live matching.
func (r *Repo) Create(ctx context.Context, m *domain.Matching) error {
	sql, args, err := postgres.Builder().
		Insert("matchings").
		Columns("id", "product_id", "status", "created_at", "updated_at").
		Values(m.ID, m.ProductID, m.Status.String(), m.CreatedAt, m.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "matching", m.ID)
	}
	return nil
}

// UpdateState writes the mutable columns of a matching.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, p domain.MatchingStateParams, updatedAt time.Time) error {
	sql, args, err := postgres.Builder().
		Update("matchings").
		SetMap(map[string]any{
			"place_id":        p.PlaceID,
			"status":          p.Status.String(),
			"host_completed":  p.HostCompleted,
			"guest_completed": p.GuestCompleted,
			"distance":        p.Distance,
			"start_date":      p.StartDate,
			"expiry_date":     p.ExpiryDate,
			"updated_at":      updatedAt,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "matching", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("matching %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a matching.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM matchings WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "matching", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("matching %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListEligible returns STORED matchings that may raise a date trigger on day:
// storage starts, the reminder or warning date, or expiry falls on day.
func (r *Repo) ListEligible(ctx context.Context, day time.Time, confirmDays int) ([]domain.Matching, error) {
	d := domain.DateOf(day)

	q := selectMatchings().
		Where(squirrel.Eq{"m.status": domain.MatchingStatusStored.String()}).
		Where(squirrel.Or{
			squirrel.Expr("m.start_date = ?::date", d),
			squirrel.Expr("m.start_date + ?::int = ?::date", confirmDays, d),
			squirrel.Expr("m.expiry_date - ?::int = ?::date", confirmDays, d),
			squirrel.Expr("m.expiry_date = ?::date", d),
		}).
		OrderBy("m.expiry_date", "m.id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list eligible matchings: %w", err)
	}

	out := make([]domain.Matching, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}
