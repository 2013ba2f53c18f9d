package reservations

import "errors"

var (
	// ErrInvalidDateRange is returned when the range end precedes its start
	ErrInvalidDateRange = errors.New("reservations: end date precedes start date")

	// ErrEmptyEventName is returned when the new event name is empty after trimming
	ErrEmptyEventName = errors.New("reservations: event name must not be empty")

	// ErrReservationNotFound is returned when the reservation key is unknown
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("reservations: internal error")
)
