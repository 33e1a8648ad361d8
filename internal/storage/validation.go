// Package storage provides the data persistence layer for county finance
// records and their supporting tables.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kauntidev/kaunti/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrEmptySlice    = errors.New("slice cannot be empty")
	ErrInvalidRecord = errors.New("invalid county record")
	ErrInvalidAlias  = errors.New("invalid alias override")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecords validates a slice of county records before a wholesale
// replace. An empty slice is rejected here: replacing a fiscal year with
// nothing is almost always a caller bug, and there is a dedicated
// DeleteRecords for the intentional case.
func validateRecords(records []model.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: records", ErrEmptySlice)
	}
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			return fmt.Errorf("record at index %d: %w", i, err)
		}
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("%w: duplicate county code %s", ErrInvalidRecord, rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	return nil
}

// validateRecord validates a single county record.
func validateRecord(rec model.Record) error {
	if strings.TrimSpace(rec.ID) == "" {
		return fmt.Errorf("%w: missing county code", ErrInvalidRecord)
	}
	if strings.TrimSpace(rec.Name) == "" {
		return fmt.Errorf("%w: missing county name", ErrInvalidRecord)
	}
	if strings.TrimSpace(rec.FiscalYear) == "" {
		return fmt.Errorf("%w: missing fiscal year", ErrInvalidRecord)
	}
	if !rec.Audit.Status.Valid() {
		return fmt.Errorf("%w: unknown audit status %q", ErrInvalidRecord, rec.Audit.Status)
	}
	return nil
}

// validateAlias validates an alias override pair. Keys are stored in
// normalized form, so they must be non-empty and must differ: a self-alias
// is a no-op that only hides real entries.
func validateAlias(boundaryKey, recordKey string) error {
	if strings.TrimSpace(boundaryKey) == "" {
		return fmt.Errorf("%w: missing boundary key", ErrInvalidAlias)
	}
	if strings.TrimSpace(recordKey) == "" {
		return fmt.Errorf("%w: missing record key", ErrInvalidAlias)
	}
	if boundaryKey == recordKey {
		return fmt.Errorf("%w: boundary key and record key are identical", ErrInvalidAlias)
	}
	return nil
}
