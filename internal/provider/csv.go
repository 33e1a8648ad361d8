package provider

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kauntidev/kaunti/internal/model"
)

// headerAliases folds the column names seen across Controller of Budget
// exports onto canonical keys. Columns are matched after lowercasing and
// underscore normalization, so "County Code" and "county_code" are the
// same column.
var headerAliases = map[string]string{
	"code":               "code",
	"county_code":        "code",
	"name":               "name",
	"county":             "name",
	"county_name":        "name",
	"population":         "population",
	"budget_allocated":   "allocated",
	"allocated":          "allocated",
	"approved_budget":    "allocated",
	"budget_spent":       "spent",
	"spent":              "spent",
	"total_expenditure":  "spent",
	"own_source_revenue": "osr",
	"osr":                "osr",
	"debt_outstanding":   "debt",
	"outstanding_debt":   "debt",
	"debt":               "debt",
	"pending_bills":      "pending_bills",
	"audit_opinion":      "audit",
	"opinion":            "audit",
	"audit":              "audit",
	"audit_note":         "note",
	"note":               "note",
	"fiscal_year":        "fy",
	"fy":                 "fy",
}

// ParseCSV reads a Controller of Budget style export. Columns are located
// by header name, not position, so reordered exports keep working. Rows
// missing a county code or name, or carrying unparseable numbers, are
// logged and skipped. fallbackFY fills the fiscal year for files without a
// fiscal_year column.
func ParseCSV(r io.Reader, fallbackFY string) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols := mapHeader(header)
	if _, ok := cols["code"]; !ok {
		return nil, fmt.Errorf("csv has no county code column")
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("csv has no county name column")
	}

	var records []model.Record
	line := 1
	for {
		row, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				slog.Warn("Skipping ragged csv row", "line", line)
				continue
			}
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		rec, ok := rowToRecord(row, cols, fallbackFY)
		if !ok {
			slog.Warn("Skipping malformed csv row", "line", line)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func mapHeader(header []string) map[string]int {
	replacer := strings.NewReplacer(" ", "_", "-", "_", ".", "")
	cols := make(map[string]int, len(header))
	for i, raw := range header {
		name := replacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
		if key, ok := headerAliases[name]; ok {
			if _, taken := cols[key]; !taken {
				cols[key] = i
			}
		}
	}
	return cols
}

func rowToRecord(row []string, cols map[string]int, fallbackFY string) (model.Record, bool) {
	field := func(key string) string {
		i, ok := cols[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	code := field("code")
	name := field("name")
	if code == "" || name == "" {
		return model.Record{}, false
	}

	fy := field("fy")
	if fy == "" {
		fy = fallbackFY
	}

	population, err := parseCount(field("population"))
	if err != nil {
		return model.Record{}, false
	}

	var amounts [5]float64
	for i, key := range []string{"allocated", "spent", "osr", "debt", "pending_bills"} {
		v, err := parseMoney(field(key))
		if err != nil {
			return model.Record{}, false
		}
		amounts[i] = v
	}

	return model.Record{
		ID:         code,
		Name:       name,
		FiscalYear: fy,
		Population: population,
		Budget: model.Budget{
			Allocated:        amounts[0],
			Spent:            amounts[1],
			OwnSourceRevenue: amounts[2],
		},
		Debt: model.Debt{
			Outstanding:  amounts[3],
			PendingBills: amounts[4],
		},
		Audit: model.Audit{
			Status: model.ParseAuditStatus(field("audit")),
			Note:   field("note"),
		},
	}, true
}

// parseMoney reads a currency amount, tolerating thousands separators and
// blank cells. Exports use "-" for nil amounts.
func parseMoney(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseCount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
