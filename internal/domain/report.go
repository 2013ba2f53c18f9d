package domain

import "time"

// ReservationDetail is one row of the reservations report, joined with the
// room and client it references
type ReservationDetail struct {
	Folio        string
	EventName    string
	Date         time.Time
	Shift        Shift
	RoomName     string
	RoomCapacity int
	ClientName   string // "Surname, Name"
}
