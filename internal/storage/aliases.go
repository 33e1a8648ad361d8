package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/kauntidev/kaunti/internal/common"
)

// AliasOverride is one operator-curated boundary-to-record key mapping.
// Both keys are stored in normalized form; normalization happens in the
// command layer so the table never holds raw display names.
type AliasOverride struct {
	CreatedAt   time.Time
	BoundaryKey string
	RecordKey   string
	Note        string
}

// SaveAliasOverride inserts or updates an alias override.
func (s *SQLiteStorage) SaveAliasOverride(ctx context.Context, override AliasOverride) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAlias(override.BoundaryKey, override.RecordKey); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO alias_overrides (boundary_key, record_key, note)
		VALUES (?, ?, ?)
		ON CONFLICT(boundary_key) DO UPDATE SET
			record_key = excluded.record_key,
			note = excluded.note
	`, override.BoundaryKey, override.RecordKey, override.Note)
	if err != nil {
		return fmt.Errorf("failed to save alias override: %w", err)
	}

	return nil
}

// DeleteAliasOverride removes an alias override by its boundary key.
// Returns common.ErrNotFound when no such override exists.
func (s *SQLiteStorage) DeleteAliasOverride(ctx context.Context, boundaryKey string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(boundaryKey, "boundaryKey"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM alias_overrides WHERE boundary_key = ?
	`, boundaryKey)
	if err != nil {
		return fmt.Errorf("failed to delete alias override: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

// ListAliasOverrides returns every stored override ordered by boundary key.
func (s *SQLiteStorage) ListAliasOverrides(ctx context.Context) ([]AliasOverride, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT boundary_key, record_key, note, created_at
		FROM alias_overrides
		ORDER BY boundary_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query alias overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var overrides []AliasOverride
	for rows.Next() {
		var o AliasOverride
		if err := rows.Scan(&o.BoundaryKey, &o.RecordKey, &o.Note, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alias override: %w", err)
		}
		overrides = append(overrides, o)
	}

	return overrides, rows.Err()
}

// AliasOverrideMap returns the stored overrides as a plain key-to-key map,
// the shape match.Aliases.Merge consumes.
func (s *SQLiteStorage) AliasOverrideMap(ctx context.Context) (map[string]string, error) {
	overrides, err := s.ListAliasOverrides(ctx)
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(overrides))
	for _, o := range overrides {
		m[o.BoundaryKey] = o.RecordKey
	}
	return m, nil
}
