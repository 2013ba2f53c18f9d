package domain

import (
	"fmt"
	"time"
)

// Reservation represents a booked (room, date, shift) slot.
// The (RoomID, Date, Shift) triple is unique across all reservations.
// EventName may be edited later; reservations are never deleted.
type Reservation struct {
	ID        int64
	Folio     string
	ClientID  int64
	RoomID    int64
	Date      time.Time // calendar date, no time-of-day
	Shift     Shift
	EventName string
}

// FolioForID derives the display folio from a reservation key:
// "R" followed by the key zero-padded to 6 digits
func FolioForID(id int64) string {
	return fmt.Sprintf("R%06d", id)
}
