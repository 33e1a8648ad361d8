package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 4

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial county records schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS county_records (
					fiscal_year TEXT NOT NULL,
					code TEXT NOT NULL,
					name TEXT NOT NULL,
					population INTEGER NOT NULL DEFAULT 0,
					budget_allocated REAL NOT NULL DEFAULT 0,
					budget_spent REAL NOT NULL DEFAULT 0,
					debt_outstanding REAL NOT NULL DEFAULT 0,
					pending_bills REAL NOT NULL DEFAULT 0,
					audit_status TEXT NOT NULL DEFAULT 'pending',
					audit_note TEXT NOT NULL DEFAULT '',
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (fiscal_year, code)
				)`,
				`CREATE INDEX idx_county_records_fy ON county_records(fiscal_year)`,
				`CREATE INDEX idx_county_records_name ON county_records(name)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add fetch log for dataset provenance",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS fetch_log (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					version TEXT NOT NULL,
					fiscal_year TEXT NOT NULL,
					source TEXT NOT NULL,
					record_count INTEGER NOT NULL,
					fetched_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_fetch_log_fy ON fetch_log(fiscal_year, fetched_at)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add alias overrides for boundary name matching",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS alias_overrides (
					boundary_key TEXT PRIMARY KEY,
					record_key TEXT NOT NULL,
					note TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)
			`)
			return err
		},
	},
	{
		Version:     4,
		Description: "Add own-source revenue to county records",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				ALTER TABLE county_records
				ADD COLUMN own_source_revenue REAL NOT NULL DEFAULT 0
			`)
			if err != nil {
				return fmt.Errorf("failed to add own_source_revenue column: %w", err)
			}
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	// Get current version
	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	// Apply migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		// Update version
		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	// Verify we're at the expected schema version
	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
