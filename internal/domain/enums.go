package domain

// MatchingStatus is the lifecycle state of a Matching.
type MatchingStatus string

const (
	MatchingStatusUnassigned MatchingStatus = "UNASSIGNED"
	MatchingStatusRequested  MatchingStatus = "REQUESTED"
	MatchingStatusRejected   MatchingStatus = "REJECTED"
	MatchingStatusPending    MatchingStatus = "PENDING"
	MatchingStatusStored     MatchingStatus = "STORED"
	MatchingStatusCompleted  MatchingStatus = "COMPLETED"
)

func (s MatchingStatus) String() string { return string(s) }

func (s MatchingStatus) IsValid() bool {
	switch s {
	case MatchingStatusUnassigned, MatchingStatusRequested, MatchingStatusRejected,
		MatchingStatusPending, MatchingStatusStored, MatchingStatusCompleted:
		return true
	}
	return false
}

// successors lists the legal next statuses for each status.
var successors = map[MatchingStatus][]MatchingStatus{
	MatchingStatusUnassigned: {MatchingStatusRequested},
	MatchingStatusRequested:  {MatchingStatusPending, MatchingStatusRejected},
	MatchingStatusPending:    {MatchingStatusStored, MatchingStatusRequested},
	MatchingStatusStored:     {MatchingStatusStored, MatchingStatusCompleted},
}

// CanTransition reports whether next is a legal successor of s.
// STORED → STORED covers the half-completed step of CompleteStorage.
func (s MatchingStatus) CanTransition(next MatchingStatus) bool {
	for _, n := range successors[s] {
		if n == next {
			return true
		}
	}
	return false
}

// IsWithdrawable reports whether a matching in this status may still be deleted by its Guest.
func (s MatchingStatus) IsWithdrawable() bool {
	switch s {
	case MatchingStatusUnassigned, MatchingStatusRequested, MatchingStatusRejected:
		return true
	}
	return false
}

// UserRole is the side a user plays in the marketplace.
type UserRole string

const (
	UserRoleGuest UserRole = "GUEST"
	UserRoleHost  UserRole = "HOST"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleGuest, UserRoleHost:
		return true
	}
	return false
}

// Label returns the lower-case display name of the role.
func (r UserRole) Label() string {
	switch r {
	case UserRoleGuest:
		return "guest"
	case UserRoleHost:
		return "host"
	}
	return "unknown"
}

// Other returns the opposite side.
func (r UserRole) Other() UserRole {
	if r == UserRoleGuest {
		return UserRoleHost
	}
	return UserRoleGuest
}

// Trigger identifies a date-based lifecycle event raised by the expiry scanner.
type Trigger string

const (
	TriggerReminder Trigger = "REMINDER"
	TriggerWarning  Trigger = "WARNING"
	TriggerExpired  Trigger = "EXPIRED"
)

func (t Trigger) String() string { return string(t) }

func (t Trigger) IsValid() bool {
	switch t {
	case TriggerReminder, TriggerWarning, TriggerExpired:
		return true
	}
	return false
}

// EventKind is the type of a frame sent over a live channel.
type EventKind string

const (
	EventKindConnect      EventKind = "CONNECT"
	EventKindNotification EventKind = "NOTIFICATION"
)

func (k EventKind) String() string { return string(k) }
