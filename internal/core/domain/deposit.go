package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus represents the lifecycle state of a customer deposit.
type DepositStatus string

const (
	DepositStatusNotDeposited DepositStatus = "NOT_DEPOSITED"
	DepositStatusDeposited    DepositStatus = "DEPOSITED"
	DepositStatusFullyApplied DepositStatus = "FULLY_APPLIED"
)

// depositStatusLabels maps status codes to their display labels.
// The map is module-scoped and never mutated at runtime.
var depositStatusLabels = map[DepositStatus]string{
	DepositStatusNotDeposited: "Not Deposited",
	DepositStatusDeposited:    "Deposited",
	DepositStatusFullyApplied: "Fully Applied",
}

// Label returns the human-readable label for the status, falling back to the
// raw code for values the map does not know about.
func (s DepositStatus) Label() string {
	if label, ok := depositStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Deposit is a customer cash receipt with its applied/unapplied balances as of
// the report cutoff. Date carries the policy-adjusted report date: deposits
// recorded before the migration cutover take their sales order's date because
// the native deposit date is unreliable before that point.
type Deposit struct {
	DepositID        string          `json:"depositID"`
	DepositNumber    string          `json:"depositNumber"`
	Date             time.Time       `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	Status           DepositStatus   `json:"status"`
	SalesOrderID     *string         `json:"salesOrderID,omitempty"`
	SalesOrderDate   *time.Time      `json:"salesOrderDate,omitempty"`
	SalesOrderStatus *string         `json:"salesOrderStatus,omitempty"`
	Department       *string         `json:"department,omitempty"`
	SalesRep         *string         `json:"salesRep,omitempty"`
	AmountApplied    decimal.Decimal `json:"amountApplied"`
	AmountUnapplied  decimal.Decimal `json:"amountUnapplied"`
}

// DeriveUnapplied recomputes AmountUnapplied from the deposit total and the
// applied amount. It returns true when a positive unapplied balance remains;
// fully-applied deposits are excluded from the report by construction.
func (d *Deposit) DeriveUnapplied() bool {
	d.AmountUnapplied = d.Amount.Sub(d.AmountApplied)
	return d.AmountUnapplied.IsPositive()
}

// DepositSection is the deposit engine's output: the capped detail rows plus
// truncation metadata. When the detail query hits the row cap, TotalUnapplied
// is sourced from the aggregate query so the headline total stays exact even
// though the visible rows are partial. Per-row sums over a truncated row list
// are best effort and may understate the true total.
type DepositSection struct {
	Rows                 []Deposit       `json:"rows"`
	IsTruncated          bool            `json:"isTruncated"`
	ActualCount          int64           `json:"actualCount"`
	ActualTotalUnapplied decimal.Decimal `json:"actualTotalUnapplied"`
	TotalUnapplied       decimal.Decimal `json:"totalUnapplied"`
	Failed               bool            `json:"failed"`
}
