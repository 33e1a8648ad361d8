package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudget_Utilization(t *testing.T) {
	tests := []struct {
		name   string
		budget Budget
		want   float64
	}{
		{
			name:   "typical absorption",
			budget: Budget{Allocated: 200, Spent: 150},
			want:   0.75,
		},
		{
			name:   "nothing allocated",
			budget: Budget{Allocated: 0, Spent: 10},
			want:   0,
		},
		{
			name:   "overspend exceeds one",
			budget: Budget{Allocated: 100, Spent: 120},
			want:   1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.budget.Utilization(), 1e-9)
		})
	}
}

func TestRecord_DerivedIndicators(t *testing.T) {
	rec := Record{
		ID:         "047",
		Name:       "Nairobi",
		FiscalYear: "2024/25",
		Budget:     Budget{Allocated: 42000, Spent: 31500, OwnSourceRevenue: 10200},
		Debt:       Debt{Outstanding: 8400, PendingBills: 1070},
		Audit:      Audit{Status: AuditQualified},
		Population: 4_397_073,
	}

	assert.InDelta(t, 10500.0, rec.FundingGap(), 1e-9)
	assert.InDelta(t, 0.2, rec.DebtRatio(), 1e-9)
	assert.InDelta(t, 8400*1_000_000/4_397_073.0, rec.DebtPerCapita(), 1e-6)
}

func TestRecord_DerivedIndicatorsZeroGuards(t *testing.T) {
	var rec Record

	assert.Zero(t, rec.FundingGap())
	assert.Zero(t, rec.DebtRatio())
	assert.Zero(t, rec.DebtPerCapita())
}

func TestDataset_IndexByID(t *testing.T) {
	ds := NewDataset([]Record{
		{ID: "001", Name: "Mombasa"},
		{ID: "022", Name: "Kiambu"},
		{ID: "047", Name: "Nairobi"},
	})

	idx, ok := ds.IndexByID("022")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = ds.IndexByID("999")
	assert.False(t, ok)

	_, ok = ds.IndexByID("")
	assert.False(t, ok)
}

func TestNewDataset_VersionsDiffer(t *testing.T) {
	recs := []Record{{ID: "001", Name: "Mombasa"}}

	a := NewDataset(recs)
	b := NewDataset(recs)

	assert.NotEqual(t, a.Version, b.Version, "each snapshot gets its own version")
	assert.False(t, a.Empty())
	assert.Equal(t, 1, a.Len())
	assert.True(t, NewDataset(nil).Empty())
}
