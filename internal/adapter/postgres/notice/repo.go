// Package notice stores the markers that record which date triggers have
// already fired for a matching.
package notice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// Repo provides matching notice persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notice repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Claim records that trigger fired for matchingID on day. It returns false
// when the trigger was already claimed, by this or any earlier run.
func (r *Repo) Claim(ctx context.Context, matchingID uuid.UUID, trigger domain.Trigger, day time.Time) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO matching_notices (matching_id, trigger, fired_on)
		 VALUES ($1, $2, $3::date)
		 ON CONFLICT (matching_id, trigger) DO NOTHING`,
		matchingID, trigger.String(), domain.DateOf(day),
	)
	if err != nil {
		return false, postgres.MapError(err, "matching notice", matchingID)
	}
	return tag.RowsAffected() == 1, nil
}
