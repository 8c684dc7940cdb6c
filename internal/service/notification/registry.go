package notification

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps a user to at most one live channel.
// No method blocks on network I/O.
type Registry struct {
	mu       sync.RWMutex
	channels map[uuid.UUID]*Channel
	buffer   int
}

// NewRegistry creates an empty registry whose channels buffer up to buffer events.
func NewRegistry(buffer int) *Registry {
	if buffer < 1 {
		buffer = 1
	}
	return &Registry{
		channels: make(map[uuid.UUID]*Channel),
		buffer:   buffer,
	}
}

// Subscribe opens a new channel for userID. A previous channel of the same
// user is replaced and closed.
func (r *Registry) Subscribe(userID uuid.UUID) *Channel {
	ch := newChannel(userID, r.buffer)

	r.mu.Lock()
	prev := r.channels[userID]
	r.channels[userID] = ch
	r.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	return ch
}

// Unsubscribe removes and closes the channel of userID, if any.
func (r *Registry) Unsubscribe(userID uuid.UUID) {
	r.mu.Lock()
	ch := r.channels[userID]
	delete(r.channels, userID)
	r.mu.Unlock()

	if ch != nil {
		ch.Close()
	}
}

// Lookup returns the live channel of userID.
func (r *Registry) Lookup(userID uuid.UUID) (*Channel, bool) {
	r.mu.RLock()
	ch, ok := r.channels[userID]
	r.mu.RUnlock()
	return ch, ok
}

// Release closes ch and removes it from the registry only if it is still the
// user's current channel. It reports whether an entry was removed.
func (r *Registry) Release(ch *Channel) bool {
	r.mu.Lock()
	removed := false
	if cur, ok := r.channels[ch.userID]; ok && cur == ch {
		delete(r.channels, ch.userID)
		removed = true
	}
	r.mu.Unlock()

	ch.Close()
	return removed
}

// Len returns the number of open channels.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels)
}

// Close closes every channel and empties the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.channels
	r.channels = make(map[uuid.UUID]*Channel)
	r.mu.Unlock()

	for _, ch := range all {
		ch.Close()
	}
}
