package rooms

import "errors"

var (
	// ErrRoomNotFound is returned when no room exists for the given key
	ErrRoomNotFound = errors.New("rooms.repository: room not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("rooms.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("rooms.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("rooms.repository: failed to scan row")
)
