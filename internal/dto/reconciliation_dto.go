package dto

import (
	"time"

	"github.com/opsledger/deposit_recon_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DepositRowResponse represents one deposit row in the report response
type DepositRowResponse struct {
	DepositID        string          `json:"depositID"`
	DepositNumber    string          `json:"depositNumber"`
	Date             string          `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	StatusLabel      string          `json:"statusLabel"`
	SalesOrderID     *string         `json:"salesOrderID,omitempty"`
	SalesOrderDate   *string         `json:"salesOrderDate,omitempty"`
	SalesOrderStatus *string         `json:"salesOrderStatus,omitempty"`
	Department       *string         `json:"department,omitempty"`
	SalesRep         *string         `json:"salesRep,omitempty"`
	AmountApplied    decimal.Decimal `json:"amountApplied"`
	AmountUnapplied  decimal.Decimal `json:"amountUnapplied"`
}

// DepositSectionResponse represents the deposit section of the report.
// The visible totals are sums over the returned rows only; when the section
// is truncated they are best effort and may understate the true figures,
// while TotalUnapplied is always exact (sourced from the aggregate query on
// truncation).
type DepositSectionResponse struct {
	Rows                  []DepositRowResponse `json:"rows"`
	IsTruncated           bool                 `json:"isTruncated"`
	ActualCount           int64                `json:"actualCount"`
	ActualTotalUnapplied  decimal.Decimal      `json:"actualTotalUnapplied"`
	TotalUnapplied        decimal.Decimal      `json:"totalUnapplied"`
	VisibleAmountTotal    decimal.Decimal      `json:"visibleAmountTotal"`
	VisibleAppliedTotal   decimal.Decimal      `json:"visibleAppliedTotal"`
	VisibleUnappliedTotal decimal.Decimal      `json:"visibleUnappliedTotal"`
	Failed                bool                 `json:"failed"`
}

// CreditMemoRowResponse represents one credit memo row in the report response
type CreditMemoRowResponse struct {
	CreditMemoID          string          `json:"creditMemoID"`
	MemoNumber            string          `json:"memoNumber"`
	Date                  string          `json:"date"`
	Amount                decimal.Decimal `json:"amount"`
	Status                string          `json:"status"`
	StatusLabel           string          `json:"statusLabel"`
	OriginDepositID       *string         `json:"originDepositID,omitempty"`
	OriginDepositNumber   *string         `json:"originDepositNumber,omitempty"`
	SalesOrderID          *string         `json:"salesOrderID,omitempty"`
	OverpaymentDate       *string         `json:"overpaymentDate,omitempty"`
	CustomerID            string          `json:"customerID"`
	CustomerName          string          `json:"customerName"`
	ReceivablesBalance    decimal.Decimal `json:"receivablesBalance"`
	DepositBalance        decimal.Decimal `json:"depositBalance"`
	UnbilledOrdersBalance decimal.Decimal `json:"unbilledOrdersBalance"`
	AmountApplied         decimal.Decimal `json:"amountApplied"`
	AmountUnapplied       decimal.Decimal `json:"amountUnapplied"`
}

// CreditMemoSectionResponse represents the credit memo section of the report
type CreditMemoSectionResponse struct {
	Rows           []CreditMemoRowResponse `json:"rows"`
	TotalUnapplied decimal.Decimal         `json:"totalUnapplied"`
	Failed         bool                    `json:"failed"`
}

// JournalLineResponse represents one journal line in the report response
type JournalLineResponse struct {
	JournalID     string          `json:"journalID"`
	JournalNumber string          `json:"journalNumber"`
	Date          string          `json:"date"`
	Memo          string          `json:"memo"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	RunningTotal  decimal.Decimal `json:"runningTotal"`
}

// JournalSectionResponse represents the journal adjustment section of the
// report. Running totals are computed over the returned (date descending)
// order; a client re-sorting the lines recomputes them over display order.
type JournalSectionResponse struct {
	Lines  []JournalLineResponse `json:"lines"`
	Impact decimal.Decimal       `json:"impact"`
	Failed bool                  `json:"failed"`
}

// SummaryResponse represents the three-way variance summary
type SummaryResponse struct {
	TotalUnappliedDeposits    decimal.Decimal `json:"totalUnappliedDeposits"`
	TotalUnappliedCreditMemos decimal.Decimal `json:"totalUnappliedCreditMemos"`
	JournalImpact             decimal.Decimal `json:"journalImpact"`
	AdjustedTotal             decimal.Decimal `json:"adjustedTotal"`
	GLBalance                 decimal.Decimal `json:"glBalance"`
	Variance                  decimal.Decimal `json:"variance"`
	VarianceFlag              bool            `json:"varianceFlag"`
}

// UnappliedDepositsReportResponse is the full report response. When Loaded is
// false the expensive queries were not issued (two-phase load) and every
// section is empty.
type UnappliedDepositsReportResponse struct {
	AsOf            string                    `json:"asOf"`
	Loaded          bool                      `json:"loaded"`
	Deposits        DepositSectionResponse    `json:"deposits"`
	CreditMemos     CreditMemoSectionResponse `json:"creditMemos"`
	Journal         JournalSectionResponse    `json:"journal"`
	GLBalance       decimal.Decimal           `json:"glBalance"`
	GLBalanceFailed bool                      `json:"glBalanceFailed"`
	Summary         SummaryResponse           `json:"summary"`
}

// NewDeferredReportResponse builds the response for a request without the
// load flag: the shell only, no queries issued.
func NewDeferredReportResponse(asOf time.Time) UnappliedDepositsReportResponse {
	return UnappliedDepositsReportResponse{
		AsOf:   asOf.Format(dateLayout),
		Loaded: false,
		Deposits: DepositSectionResponse{
			Rows: []DepositRowResponse{},
		},
		CreditMemos: CreditMemoSectionResponse{
			Rows: []CreditMemoRowResponse{},
		},
		Journal: JournalSectionResponse{
			Lines: []JournalLineResponse{},
		},
	}
}

// ToUnappliedDepositsReportResponse converts a domain report to a DTO response
func ToUnappliedDepositsReportResponse(report *domain.ReconciliationReport) UnappliedDepositsReportResponse {
	response := UnappliedDepositsReportResponse{
		AsOf:            report.AsOf.Format(dateLayout),
		Loaded:          true,
		Deposits:        toDepositSectionResponse(report.Deposits),
		CreditMemos:     toCreditMemoSectionResponse(report.CreditMemos),
		Journal:         toJournalSectionResponse(report.Journal),
		GLBalance:       report.GLBalance,
		GLBalanceFailed: report.GLBalanceFailed,
		Summary: SummaryResponse{
			TotalUnappliedDeposits:    report.Summary.TotalUnappliedDeposits,
			TotalUnappliedCreditMemos: report.Summary.TotalUnappliedCreditMemos,
			JournalImpact:             report.Summary.JournalImpact,
			AdjustedTotal:             report.Summary.AdjustedTotal,
			GLBalance:                 report.Summary.GLBalance,
			Variance:                  report.Summary.Variance,
			VarianceFlag:              report.Summary.VarianceFlag,
		},
	}
	return response
}

func toDepositSectionResponse(section domain.DepositSection) DepositSectionResponse {
	response := DepositSectionResponse{
		Rows:                 make([]DepositRowResponse, len(section.Rows)),
		IsTruncated:          section.IsTruncated,
		ActualCount:          section.ActualCount,
		ActualTotalUnapplied: section.ActualTotalUnapplied,
		TotalUnapplied:       section.TotalUnapplied,
		Failed:               section.Failed,
	}

	amountTotal := decimal.Zero
	appliedTotal := decimal.Zero
	unappliedTotal := decimal.Zero

	for i, row := range section.Rows {
		response.Rows[i] = DepositRowResponse{
			DepositID:        row.DepositID,
			DepositNumber:    row.DepositNumber,
			Date:             row.Date.Format(dateLayout),
			Amount:           row.Amount,
			Status:           string(row.Status),
			StatusLabel:      row.Status.Label(),
			SalesOrderID:     row.SalesOrderID,
			SalesOrderDate:   formatDatePtr(row.SalesOrderDate),
			SalesOrderStatus: row.SalesOrderStatus,
			Department:       row.Department,
			SalesRep:         row.SalesRep,
			AmountApplied:    row.AmountApplied,
			AmountUnapplied:  row.AmountUnapplied,
		}

		amountTotal = amountTotal.Add(row.Amount)
		appliedTotal = appliedTotal.Add(row.AmountApplied)
		unappliedTotal = unappliedTotal.Add(row.AmountUnapplied)
	}

	response.VisibleAmountTotal = amountTotal
	response.VisibleAppliedTotal = appliedTotal
	response.VisibleUnappliedTotal = unappliedTotal

	return response
}

func toCreditMemoSectionResponse(section domain.CreditMemoSection) CreditMemoSectionResponse {
	response := CreditMemoSectionResponse{
		Rows:           make([]CreditMemoRowResponse, len(section.Rows)),
		TotalUnapplied: section.TotalUnapplied,
		Failed:         section.Failed,
	}

	for i, row := range section.Rows {
		response.Rows[i] = CreditMemoRowResponse{
			CreditMemoID:          row.CreditMemoID,
			MemoNumber:            row.MemoNumber,
			Date:                  row.Date.Format(dateLayout),
			Amount:                row.Amount,
			Status:                string(row.Status),
			StatusLabel:           row.Status.Label(),
			OriginDepositID:       row.OriginDepositID,
			OriginDepositNumber:   row.OriginDepositNumber,
			SalesOrderID:          row.SalesOrderID,
			OverpaymentDate:       formatDatePtr(row.OverpaymentDate),
			CustomerID:            row.CustomerID,
			CustomerName:          row.CustomerName,
			ReceivablesBalance:    row.ReceivablesBalance,
			DepositBalance:        row.DepositBalance,
			UnbilledOrdersBalance: row.UnbilledOrdersBalance,
			AmountApplied:         row.AmountApplied,
			AmountUnapplied:       row.AmountUnapplied,
		}
	}

	return response
}

func toJournalSectionResponse(section domain.JournalSection) JournalSectionResponse {
	response := JournalSectionResponse{
		Lines:  make([]JournalLineResponse, len(section.Lines)),
		Impact: section.Impact,
		Failed: section.Failed,
	}

	for i, line := range section.Lines {
		response.Lines[i] = JournalLineResponse{
			JournalID:     line.JournalID,
			JournalNumber: line.JournalNumber,
			Date:          line.Date.Format(dateLayout),
			Memo:          line.Memo,
			Debit:         line.Debit,
			Credit:        line.Credit,
			NetAmount:     line.NetAmount,
			RunningTotal:  line.RunningTotal,
		}
	}

	return response
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
