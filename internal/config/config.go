// Package config loads the application configuration from a TOML file with
// optional environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Export   ExportConfig   `toml:"export"`
}

// DatabaseConfig configures the embedded SQLite store
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LogsConfig configures the file logger
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ExportConfig configures where report exports are written
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "reservations.db"},
		Logs:     LogsConfig{File: "logs/roomreservations.log", Level: "info"},
		Export:   ExportConfig{Dir: "."},
	}
}

// Load reads the TOML config at path, falling back to defaults when the
// file does not exist, then applies environment overrides
// (ROOMRES_DB_PATH, ROOMRES_LOG_FILE, ROOMRES_LOG_LEVEL, ROOMRES_EXPORT_DIR)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROOMRES_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("ROOMRES_LOG_FILE"); v != "" {
		cfg.Logs.File = v
	}
	if v := os.Getenv("ROOMRES_LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("ROOMRES_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
}
