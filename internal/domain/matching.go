package domain

import (
	"time"

	"github.com/google/uuid"
)

// Matching binds one Guest Product to one Host Place through the storage lifecycle.
type Matching struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	PlaceID        *uuid.UUID
	Status         MatchingStatus
	HostCompleted  bool
	GuestCompleted bool
	Distance       int
	StartDate      *time.Time
	ExpiryDate     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Read-only party data joined from products and places.
	GuestID     uuid.UUID
	HostID      uuid.UUID
	ProductName string
	PlaceName   string
}

// HasPlace reports whether a place has been assigned.
func (m *Matching) HasPlace() bool {
	return m.PlaceID != nil
}

// OwnerOf returns the user id owning the given side. HostID is uuid.Nil until a place is kept.
func (m *Matching) OwnerOf(side UserRole) uuid.UUID {
	if side == UserRoleHost {
		return m.HostID
	}
	return m.GuestID
}

// Authorize verifies that actor plays the required side of this matching.
func (m *Matching) Authorize(actor Actor, side UserRole) error {
	if actor.Role != side {
		return NotAuthorized(side)
	}
	owner := m.OwnerOf(side)
	if owner == uuid.Nil || owner != actor.UserID {
		return NotAuthorized(side)
	}
	return nil
}

// SideOf resolves which side of the matching actor is on. The actor's role breaks
// the tie when the same user owns both product and place.
func (m *Matching) SideOf(actor Actor) (UserRole, error) {
	if actor.Role.IsValid() && m.OwnerOf(actor.Role) == actor.UserID {
		return actor.Role, nil
	}
	switch actor.UserID {
	case m.GuestID:
		return UserRoleGuest, nil
	case m.HostID:
		if m.HostID != uuid.Nil {
			return UserRoleHost, nil
		}
	}
	return "", NewTransitionError(TransitionNotAuthorized, "caller is not a party of this matching")
}

// CompletedBy reports whether the given side has already marked storage complete.
func (m *Matching) CompletedBy(side UserRole) bool {
	if side == UserRoleHost {
		return m.HostCompleted
	}
	return m.GuestCompleted
}

// MarkCompleted sets the completion flag of side and moves the matching to COMPLETED
// once both flags are set. It returns true when this call completed the matching.
func (m *Matching) MarkCompleted(side UserRole) (bool, error) {
	if m.Status != MatchingStatusStored {
		return false, IncorrectStatus(MatchingStatusStored, m.Status)
	}
	if m.CompletedBy(side) {
		return false, NewTransitionError(TransitionAlreadyCompleted, "%s has already marked storage complete", side.Label())
	}

	if side == UserRoleHost {
		m.HostCompleted = true
	} else {
		m.GuestCompleted = true
	}

	if m.HostCompleted && m.GuestCompleted {
		m.Status = MatchingStatusCompleted
		return true, nil
	}
	return false, nil
}

// Store moves a PENDING matching to STORED starting on day and derives the expiry date.
func (m *Matching) Store(day time.Time, periodDays int) error {
	if m.Status != MatchingStatusPending {
		return IncorrectStatus(MatchingStatusPending, m.Status)
	}
	start := DateOf(day)
	expiry := start.AddDate(0, 0, periodDays)
	m.Status = MatchingStatusStored
	m.StartDate = &start
	m.ExpiryDate = &expiry
	return nil
}

// EffectivePeriod is the storage length in days: the shorter of what the guest asked
// for and what the host offers.
func EffectivePeriod(productDays, placeDays int) int {
	return min(productDays, placeDays)
}

// MatchingStateParams carries the mutable columns of a matching for a store update.
type MatchingStateParams struct {
	PlaceID        *uuid.UUID
	Status         MatchingStatus
	HostCompleted  bool
	GuestCompleted bool
	Distance       int
	StartDate      *time.Time
	ExpiryDate     *time.Time
}

// StateParams snapshots the mutable state of m.
func (m *Matching) StateParams() MatchingStateParams {
	return MatchingStateParams{
		PlaceID:        m.PlaceID,
		Status:         m.Status,
		HostCompleted:  m.HostCompleted,
		GuestCompleted: m.GuestCompleted,
		Distance:       m.Distance,
		StartDate:      m.StartDate,
		ExpiryDate:     m.ExpiryDate,
	}
}

// Actor is the authenticated caller of a lifecycle operation.
type Actor struct {
	UserID uuid.UUID
	Role   UserRole
}
