package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a durable message addressed to one user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// HoursElapsed returns the whole hours between creation and now. Never negative.
func (n *Notification) HoursElapsed(now time.Time) int {
	d := now.Sub(n.CreatedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Hour)
}

// Event is a frame pushed through a live channel.
type Event struct {
	Kind           EventKind
	NotificationID uuid.UUID
	Message        string
	CreatedAt      time.Time
}

// NotificationEvent builds the NOTIFICATION event for n.
func NotificationEvent(n *Notification) Event {
	return Event{
		Kind:           EventKindNotification,
		NotificationID: n.ID,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
	}
}
