package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "reservations.db", cfg.Database.Path)
	assert.Equal(t, "logs/roomreservations.log", cfg.Logs.File)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, ".", cfg.Export.Dir)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[database]
path = "/var/data/rooms.db"

[logs]
file = "/var/log/rooms.log"
level = "debug"

[export]
dir = "/tmp/exports"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/data/rooms.db", cfg.Database.Path)
	assert.Equal(t, "/var/log/rooms.log", cfg.Logs.File)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logs]\nlevel = \"warn\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logs.Level)
	assert.Equal(t, "reservations.db", cfg.Database.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROOMRES_DB_PATH", "/override/rooms.db")
	t.Setenv("ROOMRES_LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "/override/rooms.db", cfg.Database.Path)
	assert.Equal(t, "error", cfg.Logs.Level)
	assert.Equal(t, "logs/roomreservations.log", cfg.Logs.File)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database\npath = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
