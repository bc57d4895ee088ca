package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is a manual journal posting to the deposits GL account. Only
// lines dated on or after the cutover date (when automated overpayment
// conversion began) are in scope for the report.
type JournalLine struct {
	JournalID     string          `json:"journalID"`
	JournalNumber string          `json:"journalNumber"`
	Date          time.Time       `json:"date"`
	Memo          string          `json:"memo"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	RunningTotal  decimal.Decimal `json:"runningTotal"`
}

// DeriveNet recomputes the line's net ledger impact (debit minus credit).
func (l *JournalLine) DeriveNet() {
	l.NetAmount = l.Debit.Sub(l.Credit)
}

// RecomputeRunningTotals walks lines in their current order and sets each
// line's running total to the cumulative net amount up to and including it:
// runningTotal[i] = runningTotal[i-1] + netAmount[i]. The running total is
// order-dependent and must be recomputed whenever the display order changes.
func RecomputeRunningTotals(lines []JournalLine) {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].NetAmount)
		lines[i].RunningTotal = total
	}
}

// JournalImpact sums the net amount of every line. The sum is independent of
// line order.
func JournalImpact(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].NetAmount)
	}
	return total
}

// JournalSection is the journal adjustment engine's output. Lines are ordered
// by posting date descending as fetched, with running totals computed over
// that order.
type JournalSection struct {
	Lines  []JournalLine   `json:"lines"`
	Impact decimal.Decimal `json:"impact"`
	Failed bool            `json:"failed"`
}
