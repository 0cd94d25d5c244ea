// Package migrations wraps golang-migrate for schema management
package migrations

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/solobooks/solobooks/internal/logger"
)

// Options configures the migration runner
type Options struct {
	// SourceURL locates the SQL files, e.g. "file://migrations"
	SourceURL string
	// DatabaseURL is the postgres connection string
	DatabaseURL string
	// ConnectAttempts is how often to retry the initial connection
	ConnectAttempts int
	// ConnectWait is the pause between connection attempts
	ConnectWait time.Duration
}

// DefaultOptions returns the runner defaults
func DefaultOptions() Options {
	return Options{
		SourceURL:       "file://migrations",
		ConnectAttempts: 5,
		ConnectWait:     3 * time.Second,
	}
}

// Runner applies schema migrations against the database
type Runner struct {
	m *migrate.Migrate
}

// NewRunner connects to the database, retrying while it comes up
func NewRunner(opts Options) (*Runner, error) {
	var m *migrate.Migrate
	var err error
	for attempt := 1; attempt <= opts.ConnectAttempts; attempt++ {
		m, err = migrate.New(opts.SourceURL, opts.DatabaseURL)
		if err == nil {
			return &Runner{m: m}, nil
		}
		logger.Warnf("migration connection attempt %d/%d failed: %v", attempt, opts.ConnectAttempts, err)
		time.Sleep(opts.ConnectWait)
	}
	return nil, fmt.Errorf("connecting for migrations after %d attempts: %w", opts.ConnectAttempts, err)
}

// Up applies all pending migrations. Already being up to date is not an error.
func (r *Runner) Up() error {
	if err := r.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// Down rolls back every applied migration
func (r *Runner) Down() error {
	if err := r.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rolling back migrations: %w", err)
	}
	return nil
}

// Steps applies n migrations forward, or backward when n is negative
func (r *Runner) Steps(n int) error {
	if err := r.m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying %d migration steps: %w", n, err)
	}
	return nil
}

// Version reports the current schema version and whether it is dirty
func (r *Runner) Version() (uint, bool, error) {
	return r.m.Version()
}

// Force marks the schema as being at the given version without running anything
func (r *Runner) Force(version int) error {
	return r.m.Force(version)
}
