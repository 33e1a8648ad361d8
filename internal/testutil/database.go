// Package testutil provides shared fixtures for tests that need a real
// database.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/storage"
)

// NewTestStorage opens a migrated database in a temp directory and registers
// cleanup. Every test gets its own file, so tests stay isolated and parallel
// safe.
func NewTestStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "kaunti.db")
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeedRecords stores a record list for a fiscal year, failing the test on
// error. Returns the stored dataset snapshot.
func SeedRecords(t *testing.T, store *storage.SQLiteStorage, fiscalYear string, records []model.Record) model.Dataset {
	t.Helper()

	ds, err := store.ReplaceRecords(context.Background(), fiscalYear, records, "test")
	if err != nil {
		t.Fatalf("failed to seed records for FY %s: %v", fiscalYear, err)
	}
	return ds
}

// SeedAlias stores one alias override, failing the test on error. Keys must
// already be normalized, same as production writes.
func SeedAlias(t *testing.T, store *storage.SQLiteStorage, boundaryKey, recordKey, note string) {
	t.Helper()

	err := store.SaveAliasOverride(context.Background(), storage.AliasOverride{
		BoundaryKey: boundaryKey,
		RecordKey:   recordKey,
		Note:        note,
	})
	if err != nil {
		t.Fatalf("failed to seed alias %s -> %s: %v", boundaryKey, recordKey, err)
	}
}
