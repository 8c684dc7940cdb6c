// Package product reads Guest products from PostgreSQL.
package product

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// Repo provides read access to products.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new product repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a product by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &p,
		`SELECT id, owner_id, name, period_days, latitude, longitude, created_at
		 FROM products WHERE id = $1`, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "product", id)
	}
	return &p, nil
}
