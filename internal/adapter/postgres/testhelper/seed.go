package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	user := domain.User{
		ID:        uuid.New(),
		Name:      role.Label() + "-" + uniqueSuffix(),
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, role, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedProduct creates a product owned by ownerID near central Seoul.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, periodDays int) domain.Product {
	t.Helper()

	p := domain.Product{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       "product-" + uniqueSuffix(),
		PeriodDays: periodDays,
		Latitude:   37.5665,
		Longitude:  126.9780,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, owner_id, name, period_days, latitude, longitude, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.OwnerID, p.Name, p.PeriodDays, p.Latitude, p.Longitude, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return p
}

// SeedPlace creates a place owned by ownerID a few kilometres from SeedProduct's location.
func SeedPlace(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, periodDays int) domain.Place {
	t.Helper()

	p := domain.Place{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       "place-" + uniqueSuffix(),
		PeriodDays: periodDays,
		Latitude:   37.4979,
		Longitude:  127.0276,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO places (id, owner_id, name, period_days, latitude, longitude, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.OwnerID, p.Name, p.PeriodDays, p.Latitude, p.Longitude, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlace: %v", err)
	}

	return p
}

// Party bundles a guest, a host and the product/place they own.
type Party struct {
	Guest   domain.User
	Host    domain.User
	Product domain.Product
	Place   domain.Place
}

// SeedParty creates a guest with a product and a host with a place.
func SeedParty(t *testing.T, pool *pgxpool.Pool, productDays, placeDays int) Party {
	t.Helper()

	guest := SeedUser(t, pool, domain.UserRoleGuest)
	host := SeedUser(t, pool, domain.UserRoleHost)

	return Party{
		Guest:   guest,
		Host:    host,
		Product: SeedProduct(t, pool, guest.ID, productDays),
		Place:   SeedPlace(t, pool, host.ID, placeDays),
	}
}

// SeedStoredMatching inserts a STORED matching for p covering [start, expiry).
func SeedStoredMatching(t *testing.T, pool *pgxpool.Pool, p Party, start, expiry time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO matchings (id, product_id, place_id, status, start_date, expiry_date)
		 VALUES ($1, $2, $3, 'STORED', $4, $5)`,
		id, p.Product.ID, p.Place.ID, start, expiry,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStoredMatching: %v", err)
	}

	return id
}
