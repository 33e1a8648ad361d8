package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/model"
)

// ReplaceRecords swaps the stored record set for one fiscal year with a new
// one in a single transaction, logging the swap in fetch_log. Records are
// never updated row by row: a refetch always replaces the year wholesale,
// matching how the rest of the application treats datasets as immutable
// snapshots. Returns the replacement as a versioned dataset.
func (s *SQLiteStorage) ReplaceRecords(ctx context.Context, fiscalYear string, records []model.Record, source string) (model.Dataset, error) {
	if err := validateContext(ctx); err != nil {
		return model.Dataset{}, err
	}
	if err := validateString(fiscalYear, "fiscalYear"); err != nil {
		return model.Dataset{}, err
	}
	if err := validateString(source, "source"); err != nil {
		return model.Dataset{}, err
	}
	if err := validateRecords(records); err != nil {
		return model.Dataset{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM county_records WHERE fiscal_year = ?`, fiscalYear); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to clear fiscal year %s: %w", fiscalYear, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO county_records (
			fiscal_year, code, name, population,
			budget_allocated, budget_spent, own_source_revenue,
			debt_outstanding, pending_bills,
			audit_status, audit_note, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now()
	for _, rec := range records {
		if _, err = stmt.ExecContext(ctx,
			fiscalYear,
			rec.ID,
			rec.Name,
			rec.Population,
			rec.Budget.Allocated,
			rec.Budget.Spent,
			rec.Budget.OwnSourceRevenue,
			rec.Debt.Outstanding,
			rec.Debt.PendingBills,
			string(rec.Audit.Status),
			rec.Audit.Note,
			now,
		); err != nil {
			return model.Dataset{}, fmt.Errorf("failed to insert record %s: %w", rec.ID, err)
		}
	}

	version := uuid.New()
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO fetch_log (version, fiscal_year, source, record_count, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`, version.String(), fiscalYear, source, len(records), now); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to log fetch: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to commit record replacement: %w", err)
	}

	stored := make([]model.Record, len(records))
	copy(stored, records)
	for i := range stored {
		stored[i].FiscalYear = fiscalYear
	}

	return model.Dataset{
		FetchedAt: now,
		Version:   version,
		Records:   stored,
	}, nil
}

// GetDataset loads every record for a fiscal year as a fresh dataset
// snapshot, ordered by county code. Returns common.ErrNoRecords when the
// year has never been imported.
func (s *SQLiteStorage) GetDataset(ctx context.Context, fiscalYear string) (model.Dataset, error) {
	if err := validateContext(ctx); err != nil {
		return model.Dataset{}, err
	}
	if err := validateString(fiscalYear, "fiscalYear"); err != nil {
		return model.Dataset{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT code, name, population,
			budget_allocated, budget_spent, own_source_revenue,
			debt_outstanding, pending_bills,
			audit_status, audit_note
		FROM county_records
		WHERE fiscal_year = ?
		ORDER BY code
	`, fiscalYear)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var rec model.Record
		var status string
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Population,
			&rec.Budget.Allocated,
			&rec.Budget.Spent,
			&rec.Budget.OwnSourceRevenue,
			&rec.Debt.Outstanding,
			&rec.Debt.PendingBills,
			&status,
			&rec.Audit.Note,
		); err != nil {
			return model.Dataset{}, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.FiscalYear = fiscalYear
		rec.Audit.Status = model.ParseAuditStatus(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to read records: %w", err)
	}

	if len(records) == 0 {
		return model.Dataset{}, fmt.Errorf("fiscal year %s: %w", fiscalYear, common.ErrNoRecords)
	}

	return model.NewDataset(records), nil
}

// DeleteRecords removes every record for a fiscal year. Returns
// common.ErrNotFound when the year holds no records.
func (s *SQLiteStorage) DeleteRecords(ctx context.Context, fiscalYear string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(fiscalYear, "fiscalYear"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM county_records WHERE fiscal_year = ?`, fiscalYear)
	if err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
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

// ListFiscalYears returns every fiscal year with stored records, newest
// first.
func (s *SQLiteStorage) ListFiscalYears(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT fiscal_year FROM county_records ORDER BY fiscal_year DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiscal years: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var years []string
	for rows.Next() {
		var fy string
		if err := rows.Scan(&fy); err != nil {
			return nil, fmt.Errorf("failed to scan fiscal year: %w", err)
		}
		years = append(years, fy)
	}

	return years, rows.Err()
}

// FetchInfo describes one recorded dataset replacement.
type FetchInfo struct {
	FetchedAt   time.Time
	Version     uuid.UUID
	FiscalYear  string
	Source      string
	RecordCount int
}

// LastFetch returns the most recent fetch log entry for a fiscal year, or
// common.ErrNotFound when the year was never fetched.
func (s *SQLiteStorage) LastFetch(ctx context.Context, fiscalYear string) (FetchInfo, error) {
	if err := validateContext(ctx); err != nil {
		return FetchInfo{}, err
	}
	if err := validateString(fiscalYear, "fiscalYear"); err != nil {
		return FetchInfo{}, err
	}

	var info FetchInfo
	var version string
	err := s.db.QueryRowContext(ctx, `
		SELECT version, fiscal_year, source, record_count, fetched_at
		FROM fetch_log
		WHERE fiscal_year = ?
		ORDER BY fetched_at DESC, id DESC
		LIMIT 1
	`, fiscalYear).Scan(&version, &info.FiscalYear, &info.Source, &info.RecordCount, &info.FetchedAt)

	if err == sql.ErrNoRows {
		return FetchInfo{}, common.ErrNotFound
	}
	if err != nil {
		return FetchInfo{}, fmt.Errorf("failed to get fetch log: %w", err)
	}

	parsed, err := uuid.Parse(version)
	if err != nil {
		return FetchInfo{}, fmt.Errorf("failed to parse fetch version: %w", err)
	}
	info.Version = parsed

	return info, nil
}
