// Package repo contains all database access logic for Bite Tracker.
// Each entity has its own file with an interface and a SQLite implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"bitetracker/internal/domain"
	"bitetracker/migrations"
)

// db is the minimal interface satisfied by both *sql.DB and *sql.Tx.
// Accepting this interface instead of *sql.DB directly allows tests to pass
// a transaction that is rolled back afterwards when they want isolation
// without a fresh database file.
type db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows, allowing the scan
// helpers to be reused for QueryRow and Query calls alike.
type scanner interface {
	Scan(dest ...any) error
}

// Open opens (creating if necessary) the SQLite database at path and verifies
// the connection. Foreign key enforcement is switched on via DSN pragma;
// SQLite leaves it off per connection by default, and the visits table relies
// on it for the restaurant reference and delete cascade.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("repo.Open: create data dir: %w", err)
		}
	}

	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.Open: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("repo.Open: ping: %w", err)
	}
	return conn, nil
}

// Migrate applies all pending migrations from the embedded FS.
// Safe to call on every startup; goose tracks the applied version.
func Migrate(ctx context.Context, conn *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, migrations.FS)
	if err != nil {
		return fmt.Errorf("repo.Migrate: create provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("repo.Migrate: %w", err)
	}
	return nil
}

// storageErr wraps a driver failure as domain.ErrStorage, keeping the
// underlying error text for display. Not used for sql.ErrNoRows; absence
// maps to domain.ErrNotFound in the scan helpers instead.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStorage, err)
}

// nullString maps the empty string to NULL on write, matching the nullable
// TEXT columns for optional fields.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
