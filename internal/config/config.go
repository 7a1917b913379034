package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/mededu/internal/store"
	"github.com/abhisek/mededu/internal/timer"
)

// Config holds the runtime settings shared by every command.
type Config struct {
	// Backend selects the store: "json" or "sqlite".
	Backend string

	// DataPath is the document file or SQLite database.
	// Empty means store.DefaultDataPath.
	DataPath string

	// Tick is the wall-clock length of one nominal study minute.
	Tick time.Duration

	// Plain forces the line-based study timer.
	Plain bool

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend: store.BackendJSON,
		Tick:    timer.DefaultTick,
	}
}

// Load reads an optional .env file from the working directory and then
// applies MEDEDU_* environment variables over the defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv applies MEDEDU_BACKEND, MEDEDU_DATA and MEDEDU_TICK over the
// defaults.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MEDEDU_BACKEND"); v != "" {
		cfg.Backend = v
	}
	cfg.DataPath = os.Getenv("MEDEDU_DATA")

	if v := os.Getenv("MEDEDU_TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("MEDEDU_TICK: %w", err)
		}
		cfg.Tick = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	switch c.Backend {
	case store.BackendJSON, store.BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, store.BackendJSON, store.BackendSQLite)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	return nil
}

// ResolveDataPath returns DataPath, or the default location for Backend.
func (c Config) ResolveDataPath() (string, error) {
	if c.DataPath != "" {
		return c.DataPath, store.EnsureDir(c.DataPath)
	}
	return store.DefaultDataPath(c.Backend)
}
