package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/model"
)

const feedBody = `{
  "fiscal_year": "2023/24",
  "counties": [
    {
      "code": "KE-47",
      "name": "Nairobi City",
      "population": 4397000,
      "budget_allocated": 42000,
      "budget_spent": 36800,
      "own_source_revenue": 10300,
      "debt_outstanding": 86000,
      "pending_bills": 99000,
      "audit_opinion": "Disclaimer of Opinion",
      "audit_note": "Pending bills unreconciled"
    },
    {
      "code": "KE-17",
      "name": "Makueni",
      "population": 988000,
      "budget_allocated": 8400,
      "budget_spent": 8000,
      "audit_opinion": "Unqualified Opinion"
    },
    {
      "code": "",
      "name": "Ghost",
      "budget_allocated": 1
    }
  ]
}`

func TestClient_FetchRecords(t *testing.T) {
	var gotPath, gotFY string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFY = r.URL.Query().Get("fy")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	ds, err := c.FetchRecords(context.Background(), "2023/24")
	require.NoError(t, err)

	assert.Equal(t, "/v1/county-finance", gotPath)
	assert.Equal(t, "2023/24", gotFY)

	// The row without a county code is dropped.
	require.Equal(t, 2, ds.Len())
	assert.NotZero(t, ds.Version)
	assert.False(t, ds.FetchedAt.IsZero())

	nairobi := ds.Records[0]
	assert.Equal(t, "KE-47", nairobi.ID)
	assert.Equal(t, "Nairobi City", nairobi.Name)
	assert.Equal(t, "2023/24", nairobi.FiscalYear)
	assert.Equal(t, int64(4_397_000), nairobi.Population)
	assert.Equal(t, 42000.0, nairobi.Budget.Allocated)
	assert.Equal(t, 99000.0, nairobi.Debt.PendingBills)
	assert.Equal(t, model.AuditDisclaimer, nairobi.Audit.Status)
	assert.Equal(t, "Pending bills unreconciled", nairobi.Audit.Note)

	makueni := ds.Records[1]
	assert.Equal(t, model.AuditClean, makueni.Audit.Status)
	assert.Zero(t, makueni.Debt.Outstanding)
}

func TestClient_FetchRecordsFiscalYearFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"counties": [{"code": "KE-01", "name": "Mombasa"}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	ds, err := c.FetchRecords(context.Background(), "2024/25")
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "2024/25", ds.Records[0].FiscalYear, "requested fiscal year fills in when the feed omits it")
}

func TestClient_FetchRecordsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.FetchRecords(context.Background(), "2023/24")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRateLimit)
	assert.True(t, common.IsRetryable(err))
}

func TestClient_FetchRecordsServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.FetchRecords(context.Background(), "2023/24")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFeedUnavailable)
	assert.True(t, common.IsRetryable(err))
}

func TestClient_FetchRecordsClientErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such fiscal year", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.FetchRecords(context.Background(), "1999/00")
	require.Error(t, err)
	assert.False(t, common.IsRetryable(err))
	assert.Contains(t, err.Error(), "no such fiscal year")
}

func TestClient_FetchRecordsConnectionFailureIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)

	_, err = c.FetchRecords(context.Background(), "2023/24")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFeedUnavailable)
	assert.True(t, common.IsRetryable(err))
}

func TestClient_FetchRecordsBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"counties": [`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.FetchRecords(context.Background(), "2023/24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient("")
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = NewClient("ftp://finance.example.org")
	assert.Error(t, err)

	c, err := NewClient("https://finance.example.org/")
	require.NoError(t, err)
	assert.Equal(t, "https://finance.example.org", c.baseURL, "trailing slash is trimmed")
}
