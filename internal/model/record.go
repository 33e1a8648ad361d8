// Package model defines the county finance domain types shared across the application.
package model

// Budget holds one county's budget totals for a fiscal year, in KES millions.
type Budget struct {
	Allocated        float64
	Spent            float64
	OwnSourceRevenue float64
}

// Utilization returns the share of the allocated budget that was spent,
// in the range [0, 1]. Returns 0 when nothing was allocated.
func (b Budget) Utilization() float64 {
	if b.Allocated <= 0 {
		return 0
	}
	return b.Spent / b.Allocated
}

// Debt holds one county's debt position, in KES millions.
type Debt struct {
	Outstanding  float64
	PendingBills float64
}

// Audit holds the most recent audit opinion for a county.
type Audit struct {
	Status AuditStatus
	Note   string
}

// Record represents one county's financial and audit snapshot for a fiscal
// year. Records come from the data provider and are read-only to the rest of
// the application; a refreshed list always replaces the previous one wholesale.
type Record struct {
	ID         string
	Name       string
	FiscalYear string
	Budget     Budget
	Debt       Debt
	Audit      Audit
	Population int64
}

// FundingGap returns budget allocated but not absorbed, in KES millions.
// Negative values mean the county overspent its allocation.
func (r Record) FundingGap() float64 {
	return r.Budget.Allocated - r.Budget.Spent
}

// DebtRatio returns outstanding debt as a share of the allocated budget.
// Returns 0 when nothing was allocated.
func (r Record) DebtRatio() float64 {
	if r.Budget.Allocated <= 0 {
		return 0
	}
	return r.Debt.Outstanding / r.Budget.Allocated
}

// DebtPerCapita returns outstanding debt in KES per resident.
// Returns 0 when the population is unknown.
func (r Record) DebtPerCapita() float64 {
	if r.Population <= 0 {
		return 0
	}
	// Debt figures are stored in millions.
	return r.Debt.Outstanding * 1_000_000 / float64(r.Population)
}
