package expiry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

type message struct {
	to   uuid.UUID
	text string
}

// noticesFor builds the notifications one trigger sends. REMINDER goes to the
// guest only; WARNING and EXPIRED go to both parties.
func noticesFor(m *domain.Matching, trigger domain.Trigger, confirmDays int) []message {
	expiry := m.ExpiryDate.Format("2006-01-02")

	switch trigger {
	case domain.TriggerReminder:
		return []message{{
			to:   m.GuestID,
			text: fmt.Sprintf("Your %s is stored at %s until %s.", m.ProductName, m.PlaceName, expiry),
		}}
	case domain.TriggerWarning:
		return []message{
			{
				to: m.GuestID,
				text: fmt.Sprintf("Storage of your %s at %s ends in %d days, on %s.",
					m.ProductName, m.PlaceName, confirmDays, expiry),
			},
			{
				to: m.HostID,
				text: fmt.Sprintf("Storage of %s at %s ends in %d days, on %s.",
					m.ProductName, m.PlaceName, confirmDays, expiry),
			},
		}
	case domain.TriggerExpired:
		return []message{
			{
				to:   m.GuestID,
				text: fmt.Sprintf("Storage of your %s at %s has expired. Please pick it up.", m.ProductName, m.PlaceName),
			},
			{
				to:   m.HostID,
				text: fmt.Sprintf("Storage of %s at %s has expired. Please hand it back to its owner.", m.ProductName, m.PlaceName),
			},
		}
	}
	return nil
}
