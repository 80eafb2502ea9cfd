// Package testutil provides shared helpers for tests that need a real
// database. SQLite is embedded, so unlike a client/server setup there is
// nothing to skip; every test gets its own migrated throwaway database.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"bitetracker/internal/repo"
)

// NewDB opens a fresh SQLite database in the test's temporary directory and
// applies all migrations. The file is removed with the temp dir and the
// connection is closed automatically when the test (and its subtests) finish.
//
// Each call returns an isolated database, so tests never observe each
// other's rows and need no cleanup SQL.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bitetracker_test.db")
	db, err := repo.Open(path)
	if err != nil {
		t.Fatalf("testutil.NewDB: open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repo.Migrate(context.Background(), db); err != nil {
		t.Fatalf("testutil.NewDB: migrate: %v", err)
	}
	return db
}
