package reservations

import (
	"context"
	"database/sql"
)

// DBExecutor is the subset of *sql.DB the repository needs for plain queries
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB adds transaction support on top of DBExecutor. Create needs it for the
// two-phase folio assignment.
type DB interface {
	DBExecutor
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
