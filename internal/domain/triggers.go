package domain

import "time"

// DateOf returns midnight UTC of t's calendar day as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DueTriggers returns the date-based events a STORED matching raises on day.
//
//   - EXPIRED when expiry_date == day; it supersedes every other trigger that day.
//   - REMINDER when start_date + confirmDays == day.
//   - WARNING when expiry_date - confirmDays == day.
//
// Storage no longer than confirmDays has its warning date on or before the start
// date; such a matching gets a single REMINDER on its start date instead.
func DueTriggers(m *Matching, day time.Time, confirmDays int) []Trigger {
	if m.Status != MatchingStatusStored || m.StartDate == nil || m.ExpiryDate == nil {
		return nil
	}

	day = DateOf(day)
	start := DateOf(*m.StartDate)
	expiry := DateOf(*m.ExpiryDate)

	if expiry.Equal(day) {
		return []Trigger{TriggerExpired}
	}

	warnOn := expiry.AddDate(0, 0, -confirmDays)
	short := !warnOn.After(start)

	var out []Trigger
	if start.AddDate(0, 0, confirmDays).Equal(day) || (short && start.Equal(day)) {
		out = append(out, TriggerReminder)
	}
	if !short && warnOn.Equal(day) {
		out = append(out, TriggerWarning)
	}
	return out
}
