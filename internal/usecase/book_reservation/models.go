package book_reservation

import (
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

// Request carries everything the booking workflow validates.
// DateText stays raw; the workflow owns parsing so the format rule lives in
// one place. AcceptMonday confirms the Monday substitution when the
// requested date falls on a Sunday.
type Request struct {
	ClientID     int64
	DateText     string
	AcceptMonday bool
	RoomID       int64
	Shift        domain.Shift
	EventName    string
}

// Response is the completed reservation, including its folio
type Response struct {
	ID         int64
	Folio      string
	ClientID   int64
	ClientName string // "Surname, Name"
	RoomID     int64
	RoomName   string
	Date       time.Time
	Shift      domain.Shift
	EventName  string
}
