package get_available_rooms

import (
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

// Request asks for room availability on one calendar date
type Request struct {
	Date time.Time
}

// Response lists the rooms that have at least one free shift on the date.
// Rooms keep registration order (ascending key); free shifts keep the fixed
// enumeration order.
type Response struct {
	Date  time.Time
	Rooms []domain.RoomAvailability
}

// RoomFor returns the availability entry for the given room, if present
func (r *Response) RoomFor(roomID int64) (domain.RoomAvailability, bool) {
	for _, a := range r.Rooms {
		if a.Room.ID == roomID {
			return a, true
		}
	}
	return domain.RoomAvailability{}, false
}
