package get_available_rooms

import "errors"

var (
	// ErrInvalidInput is returned when the request is malformed
	ErrInvalidInput = errors.New("get_available_rooms: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("get_available_rooms: internal error")
)
