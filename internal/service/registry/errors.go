package registry

import "errors"

var (
	// ErrEmptyField is returned when a required text field is empty after trimming
	ErrEmptyField = errors.New("registry: field must not be empty")

	// ErrInvalidCapacity is returned when a room capacity is not positive
	ErrInvalidCapacity = errors.New("registry: capacity must be greater than zero")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("registry: internal error")
)
