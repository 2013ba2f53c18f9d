package clients

import "errors"

var (
	// ErrClientNotFound is returned when no client exists for the given key
	ErrClientNotFound = errors.New("clients.repository: client not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("clients.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("clients.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("clients.repository: failed to scan row")
)
