package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Open opens the embedded SQLite database at path with foreign keys
// enforced and WAL journaling enabled
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}

	return db, nil
}

// schema holds the full DDL. Every statement is idempotent, so Bootstrap can
// run on both a fresh file and an existing one.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS clients(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		surname TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		capacity INTEGER NOT NULL CHECK(capacity > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS reservations(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		folio TEXT UNIQUE,
		client_id INTEGER NOT NULL,
		room_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		shift TEXT NOT NULL,
		event_name TEXT NOT NULL,
		FOREIGN KEY(client_id) REFERENCES clients(id),
		FOREIGN KEY(room_id) REFERENCES rooms(id),
		UNIQUE(room_id, date, shift)
	)`,
}

// Bootstrap creates the schema if it does not exist yet
func Bootstrap(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a SQLite UNIQUE constraint
// violation. The reservations table relies on this as the sole arbiter of
// the (room, date, shift) uniqueness rule.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// IsForeignKeyViolation reports whether err is a SQLite FOREIGN KEY
// constraint violation
func IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
