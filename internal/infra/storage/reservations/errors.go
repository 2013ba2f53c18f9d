package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation exists for the given key
	ErrReservationNotFound = errors.New("reservations.repository: reservation not found")

	// ErrShiftTaken is returned when the (room, date, shift) uniqueness
	// constraint rejects an insert
	ErrShiftTaken = errors.New("reservations.repository: room already reserved for this date and shift")

	// ErrInvalidReference is returned when a foreign key constraint rejects
	// an insert (unknown client or room)
	ErrInvalidReference = errors.New("reservations.repository: unknown client or room reference")

	// ErrTransaction is returned on transaction begin/commit failures
	ErrTransaction = errors.New("reservations.repository: transaction error")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("reservations.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("reservations.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("reservations.repository: failed to scan row")
)
