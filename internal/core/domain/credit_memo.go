package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditMemoStatus represents the lifecycle state of a credit memo.
type CreditMemoStatus string

const (
	CreditMemoStatusOpen         CreditMemoStatus = "OPEN"
	CreditMemoStatusFullyApplied CreditMemoStatus = "FULLY_APPLIED"
)

var creditMemoStatusLabels = map[CreditMemoStatus]string{
	CreditMemoStatusOpen:         "Open",
	CreditMemoStatusFullyApplied: "Fully Applied",
}

// Label returns the human-readable label for the status.
func (s CreditMemoStatus) Label() string {
	if label, ok := creditMemoStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CreditMemo is a credit issued against a customer that originated from the
// conversion of a deposit overpayment. Only active, deposit-originated memos
// are considered by the report. Customer balances are denormalized context
// for the finance team deciding whether to apply, refund, or escalate.
type CreditMemo struct {
	CreditMemoID          string           `json:"creditMemoID"`
	MemoNumber            string           `json:"memoNumber"`
	Date                  time.Time        `json:"date"`
	Amount                decimal.Decimal  `json:"amount"`
	Status                CreditMemoStatus `json:"status"`
	OriginDepositID       *string          `json:"originDepositID,omitempty"`
	OriginDepositNumber   *string          `json:"originDepositNumber,omitempty"`
	SalesOrderID          *string          `json:"salesOrderID,omitempty"`
	OverpaymentDate       *time.Time       `json:"overpaymentDate,omitempty"`
	CustomerID            string           `json:"customerID"`
	CustomerName          string           `json:"customerName"`
	ReceivablesBalance    decimal.Decimal  `json:"receivablesBalance"`
	DepositBalance        decimal.Decimal  `json:"depositBalance"`
	UnbilledOrdersBalance decimal.Decimal  `json:"unbilledOrdersBalance"`
	AmountLinked          decimal.Decimal  `json:"amountLinked"`
	AmountApplied         decimal.Decimal  `json:"amountApplied"`
	AmountUnapplied       decimal.Decimal  `json:"amountUnapplied"`
}

// DeriveUnapplied recomputes the unapplied balance from the posted amount
// (taken as an absolute value, credits post negative in the ledger) and the
// amount already linked to other transactions. It returns true when a
// positive unapplied balance remains.
func (m *CreditMemo) DeriveUnapplied() bool {
	posted := m.Amount.Abs()
	m.AmountUnapplied = posted.Sub(m.AmountLinked)
	m.AmountApplied = posted.Sub(m.AmountUnapplied)
	return m.AmountUnapplied.IsPositive()
}

// CreditMemoSection is the credit memo engine's output. Volumes are assumed
// to stay below the detail row cap, so no truncation metadata is carried; this
// is a documented limitation rather than a guarantee.
type CreditMemoSection struct {
	Rows           []CreditMemo    `json:"rows"`
	TotalUnapplied decimal.Decimal `json:"totalUnapplied"`
	Failed         bool            `json:"failed"`
}
