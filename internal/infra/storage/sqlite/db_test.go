package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap_Idempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Bootstrap(ctx, db))
	require.NoError(t, Bootstrap(ctx, db))

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'
		 AND name IN ('clients', 'rooms', 'reservations')`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestIsUniqueViolation(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, Bootstrap(ctx, db))

	_, err = db.ExecContext(ctx, `INSERT INTO clients(name, surname) VALUES ('Jane', 'Doe')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO rooms(name, capacity) VALUES ('Hall A', 10)`)
	require.NoError(t, err)

	insert := `INSERT INTO reservations(client_id, room_id, date, shift, event_name)
		VALUES (1, 1, '09-15-2026', 'Morning', 'Event')`
	_, err = db.ExecContext(ctx, insert)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, Bootstrap(ctx, db))

	_, err = db.ExecContext(ctx, `INSERT INTO reservations(client_id, room_id, date, shift, event_name)
		VALUES (99, 99, '09-15-2026', 'Morning', 'Event')`)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}
