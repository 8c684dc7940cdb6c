// Package place reads Host storage places from PostgreSQL.
package place

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// Repo provides read access to places.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new place repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a place by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	var p domain.Place
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &p,
		`SELECT id, owner_id, name, period_days, latitude, longitude, created_at
		 FROM places WHERE id = $1`, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "place", id)
	}
	return &p, nil
}
