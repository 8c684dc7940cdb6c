// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`SELECT id, name, role, created_at FROM users WHERE id = $1`, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Role:      domain.UserRole(row.Role),
		CreatedAt: row.CreatedAt,
	}, nil
}

// Exists reports whether a user with id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return exists, nil
}

// Create inserts a new user.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	if !u.Role.IsValid() {
		return domain.NewValidationError("role", "must be GUEST or HOST")
	}
	if u.Name == "" {
		return domain.NewValidationError("name", "required")
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO users (id, name, role, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Name, u.Role.String(), u.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}
