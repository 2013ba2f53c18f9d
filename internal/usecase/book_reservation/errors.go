package book_reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

var (
	// ErrClientNotFound is returned when the client key is unknown
	ErrClientNotFound = errors.New("book_reservation: client not found")

	// ErrInvalidDateFormat is returned when the date text does not match MM-DD-YYYY
	ErrInvalidDateFormat = errors.New("book_reservation: invalid date format")

	// ErrDateTooSoon is returned when the date is closer than the minimum lead time
	ErrDateTooSoon = errors.New("book_reservation: date does not meet the minimum lead time")

	// ErrSundayDate is returned when the requested date falls on a Sunday and
	// the Monday substitution has not been confirmed
	ErrSundayDate = errors.New("book_reservation: requested date is a Sunday")

	// ErrNoRoomsAvailable is returned when no room has a free shift on the date
	ErrNoRoomsAvailable = errors.New("book_reservation: no rooms available on this date")

	// ErrRoomNotAvailable is returned when the chosen room is not among the
	// rooms available on the date
	ErrRoomNotAvailable = errors.New("book_reservation: room not available on this date")

	// ErrShiftNotAvailable is returned when the chosen shift is not free for
	// the chosen room on the date
	ErrShiftNotAvailable = errors.New("book_reservation: shift not available for this room")

	// ErrEmptyEventName is returned when the event name is empty after trimming
	ErrEmptyEventName = errors.New("book_reservation: event name must not be empty")

	// ErrShiftConflict is returned when the store's uniqueness constraint
	// rejects the insert because another booking won the race
	ErrShiftConflict = errors.New("book_reservation: room was booked concurrently for this date and shift")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("book_reservation: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("book_reservation: internal error")
)

// SundayDateError carries the Monday the workflow proposes in place of a
// requested Sunday. It matches ErrSundayDate under errors.Is.
type SundayDateError struct {
	Requested time.Time
	Proposed  time.Time
}

func (e *SundayDateError) Error() string {
	return fmt.Sprintf("%v: %s, proposing %s", ErrSundayDate,
		domain.FormatDate(e.Requested), domain.FormatDate(e.Proposed))
}

// Is makes errors.Is(err, ErrSundayDate) succeed for this error
func (e *SundayDateError) Is(target error) bool {
	return target == ErrSundayDate
}
