package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered marketplace participant.
type User struct {
	ID        uuid.UUID
	Name      string
	Role      UserRole
	CreatedAt time.Time
}
