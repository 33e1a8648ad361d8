// Package provider pulls county finance records into the model, either from
// the national open-data feed over HTTP or from Controller of Budget CSV
// exports. Both paths are tolerant of bad rows: a malformed county is
// logged and skipped, never fatal, so one dirty line cannot take down a
// whole fiscal year.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/model"
)

// Client fetches per-county finance records from the open-data feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Feed response types.
type recordSet struct {
	FiscalYear string      `json:"fiscal_year"`
	Counties   []countyRow `json:"counties"`
}

type countyRow struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	Population       int64   `json:"population"`
	Allocated        float64 `json:"budget_allocated"`
	Spent            float64 `json:"budget_spent"`
	OwnSourceRevenue float64 `json:"own_source_revenue"`
	DebtOutstanding  float64 `json:"debt_outstanding"`
	PendingBills     float64 `json:"pending_bills"`
	AuditOpinion     string  `json:"audit_opinion"`
	AuditNote        string  `json:"audit_note"`
}

// NewClient creates a feed client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("feed base URL is required: %w", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("feed base URL must be http(s): %s", baseURL)
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// FetchRecords fetches all county records for one fiscal year and stamps
// them as a fresh dataset version. Malformed rows are skipped with a
// warning; rate limiting and feed outages come back as retryable errors so
// callers can wrap the fetch in common.WithRetry.
func (c *Client) FetchRecords(ctx context.Context, fiscalYear string) (model.Dataset, error) {
	u, err := url.Parse(c.baseURL + "/v1/county-finance")
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to parse feed URL: %w", err)
	}
	q := u.Query()
	q.Set("fy", fiscalYear)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Requesting county finance records",
		"fiscal_year", fiscalYear,
		"url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Dataset{}, &common.RetryableError{
			Err:       fmt.Errorf("%w: %v", common.ErrFeedUnavailable, err),
			Retryable: true,
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return model.Dataset{}, fmt.Errorf("county finance feed: %w", common.ErrRateLimit)
	case resp.StatusCode >= http.StatusInternalServerError:
		return model.Dataset{}, &common.RetryableError{
			Err:       fmt.Errorf("%w: status %d", common.ErrFeedUnavailable, resp.StatusCode),
			Retryable: true,
		}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return model.Dataset{}, fmt.Errorf("county finance feed error: %d - %s", resp.StatusCode, string(body))
	}

	var set recordSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to decode feed response: %w", err)
	}

	fy := set.FiscalYear
	if fy == "" {
		fy = fiscalYear
	}

	records := make([]model.Record, 0, len(set.Counties))
	for _, row := range set.Counties {
		rec, ok := row.toRecord(fy)
		if !ok {
			slog.Warn("Skipping malformed county row",
				"code", row.Code,
				"name", row.Name)
			continue
		}
		records = append(records, rec)
	}

	slog.Debug("Fetched county finance records",
		"fiscal_year", fy,
		"count", len(records),
		"skipped", len(set.Counties)-len(records))

	return model.NewDataset(records), nil
}

// toRecord maps one feed row onto the model. Rows without a county code or
// name are unusable; everything else degrades to zero values and a pending
// audit status.
func (r countyRow) toRecord(fiscalYear string) (model.Record, bool) {
	code := strings.TrimSpace(r.Code)
	name := strings.TrimSpace(r.Name)
	if code == "" || name == "" {
		return model.Record{}, false
	}

	return model.Record{
		ID:         code,
		Name:       name,
		FiscalYear: fiscalYear,
		Population: r.Population,
		Budget: model.Budget{
			Allocated:        r.Allocated,
			Spent:            r.Spent,
			OwnSourceRevenue: r.OwnSourceRevenue,
		},
		Debt: model.Debt{
			Outstanding:  r.DebtOutstanding,
			PendingBills: r.PendingBills,
		},
		Audit: model.Audit{
			Status: model.ParseAuditStatus(r.AuditOpinion),
			Note:   strings.TrimSpace(r.AuditNote),
		},
	}, true
}
