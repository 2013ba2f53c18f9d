package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/salasys/RoomReservations/internal/infra/storage/sqlite"
)

// NewDB opens a fresh in-memory SQLite database with the full schema
// applied. The connection pool is pinned to a single connection so every
// query sees the same in-memory database.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := sqlite.Bootstrap(context.Background(), db); err != nil {
		t.Fatalf("bootstrap schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
