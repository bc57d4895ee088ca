package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultVarianceTolerance is the materiality threshold for the three-way
// variance check, in currency units.
var DefaultVarianceTolerance = decimal.RequireFromString("0.01")

// ReconciliationSummary cross-validates three independently computed totals:
// the deposit-application ledger total, the journal-entry adjustment total,
// and the general-ledger posting balance. A flagged variance is a legitimate,
// reportable output, not an error.
type ReconciliationSummary struct {
	TotalUnappliedDeposits    decimal.Decimal `json:"totalUnappliedDeposits"`
	TotalUnappliedCreditMemos decimal.Decimal `json:"totalUnappliedCreditMemos"`
	JournalImpact             decimal.Decimal `json:"journalImpact"`
	AdjustedTotal             decimal.Decimal `json:"adjustedTotal"`
	GLBalance                 decimal.Decimal `json:"glBalance"`
	Variance                  decimal.Decimal `json:"variance"`
	VarianceFlag              bool            `json:"varianceFlag"`
}

// BuildReconciliationSummary combines the engine totals with the independently
// queried GL balance. adjustedTotal = totalUnappliedDeposits - journalImpact;
// variance = |adjustedTotal - glBalance|, flagged when it exceeds tolerance.
// Purely derived and deterministic given the inputs.
func BuildReconciliationSummary(totalDeposits, totalCreditMemos, journalImpact, glBalance, tolerance decimal.Decimal) ReconciliationSummary {
	if tolerance.IsZero() {
		tolerance = DefaultVarianceTolerance
	}
	adjusted := totalDeposits.Sub(journalImpact)
	variance := adjusted.Sub(glBalance).Abs()
	return ReconciliationSummary{
		TotalUnappliedDeposits:    totalDeposits,
		TotalUnappliedCreditMemos: totalCreditMemos,
		JournalImpact:             journalImpact,
		AdjustedTotal:             adjusted,
		GLBalance:                 glBalance,
		Variance:                  variance,
		VarianceFlag:              variance.GreaterThan(tolerance),
	}
}

// ReconciliationReport is the point-in-time snapshot handed to the
// presentation layer. Each section degrades independently: a failed query
// leaves its section empty with Failed set, and never blocks the others.
type ReconciliationReport struct {
	AsOf            time.Time             `json:"asOf"`
	Deposits        DepositSection        `json:"deposits"`
	CreditMemos     CreditMemoSection     `json:"creditMemos"`
	Journal         JournalSection        `json:"journal"`
	GLBalance       decimal.Decimal       `json:"glBalance"`
	GLBalanceFailed bool                  `json:"glBalanceFailed"`
	Summary         ReconciliationSummary `json:"summary"`
}
