package notification

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

// Channel is the server side of one user's live connection. Events are
// buffered; a full buffer or a closed channel makes Send fail immediately.
type Channel struct {
	userID    uuid.UUID
	events    chan domain.Event
	done      chan struct{}
	closeOnce sync.Once
}

func newChannel(userID uuid.UUID, buffer int) *Channel {
	return &Channel{
		userID: userID,
		events: make(chan domain.Event, buffer),
		done:   make(chan struct{}),
	}
}

// UserID returns the owner of the channel.
func (c *Channel) UserID() uuid.UUID { return c.userID }

// Events is drained by the connection writer.
func (c *Channel) Events() <-chan domain.Event { return c.events }

// Done is closed when the channel is closed.
func (c *Channel) Done() <-chan struct{} { return c.done }

// Send enqueues ev without blocking.
func (c *Channel) Send(ev domain.Event) error {
	select {
	case <-c.done:
		return fmt.Errorf("%w: channel closed", domain.ErrDeliveryFailure)
	default:
	}

	select {
	case c.events <- ev:
		return nil
	case <-c.done:
		return fmt.Errorf("%w: channel closed", domain.ErrDeliveryFailure)
	default:
		return fmt.Errorf("%w: buffer full", domain.ErrDeliveryFailure)
	}
}

// Close marks the channel closed. Safe to call more than once.
// The events chan itself is never closed so concurrent senders cannot panic.
func (c *Channel) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Closed reports whether Close has been called.
func (c *Channel) Closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
