package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/opsledger/deposit_recon_app/internal/core/domain"
	portsrepo "github.com/opsledger/deposit_recon_app/internal/core/ports/repositories"
	portssvc "github.com/opsledger/deposit_recon_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DefaultDetailRowLimit is the row cap the query layer enforces on detail
// queries. Hitting it marks the deposit result as possibly truncated.
const DefaultDetailRowLimit = 5000

// ReconciliationConfig carries the report policy knobs.
type ReconciliationConfig struct {
	// DepositsAccountCode is the GL account the report reconciles.
	DepositsAccountCode string
	// CutoverDate is when automated deposit-to-credit-memo conversion began.
	// Journal lines are scoped from this date onward, and deposits recorded
	// before it take their sales order's date instead of their own.
	CutoverDate time.Time
	// DetailRowLimit caps deposit detail rows; zero means the default 5000.
	DetailRowLimit int
	// VarianceTolerance is the materiality threshold for the variance flag;
	// zero means the default 0.01.
	VarianceTolerance decimal.Decimal
}

// reconciliationService implements the ReconciliationSvc interface
type reconciliationService struct {
	BaseService
	ledger portsrepo.LedgerReader
	cfg    ReconciliationConfig
}

// NewReconciliationService creates a new reconciliation service over the
// given ledger reader.
func NewReconciliationService(ledger portsrepo.LedgerReader, cfg ReconciliationConfig) portssvc.ReconciliationSvc {
	if cfg.DetailRowLimit <= 0 {
		cfg.DetailRowLimit = DefaultDetailRowLimit
	}
	if cfg.VarianceTolerance.IsZero() {
		cfg.VarianceTolerance = domain.DefaultVarianceTolerance
	}
	return &reconciliationService{
		ledger: ledger,
		cfg:    cfg,
	}
}

// Ensure reconciliationService implements the ReconciliationSvc interface
var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

// UnappliedDepositsReport gathers the four independent data sets concurrently
// and combines them into a reconciliation snapshot. Each fetch applies the
// degrade-to-empty/zero policy on its own, so one query's failure cannot
// block the others from returning.
func (s *reconciliationService) UnappliedDepositsReport(ctx context.Context, asOf time.Time) (*domain.ReconciliationReport, error) {
	report := &domain.ReconciliationReport{AsOf: asOf}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		report.Deposits = s.reconcileDeposits(ctx, asOf)
	}()
	go func() {
		defer wg.Done()
		report.CreditMemos = s.reconcileCreditMemos(ctx, asOf)
	}()
	go func() {
		defer wg.Done()
		report.Journal = s.journalAdjustments(ctx)
	}()
	go func() {
		defer wg.Done()
		report.GLBalance, report.GLBalanceFailed = s.glBalance(ctx, asOf)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Summary = domain.BuildReconciliationSummary(
		report.Deposits.TotalUnapplied,
		report.CreditMemos.TotalUnapplied,
		report.Journal.Impact,
		report.GLBalance,
		s.cfg.VarianceTolerance,
	)

	s.LogInfo(ctx, "Unapplied deposits report generated",
		slog.String("asOf", asOf.Format("2006-01-02")),
		slog.Int("deposit_rows", len(report.Deposits.Rows)),
		slog.Bool("truncated", report.Deposits.IsTruncated),
		slog.Int("credit_memo_rows", len(report.CreditMemos.Rows)),
		slog.Int("journal_lines", len(report.Journal.Lines)),
		slog.String("variance", report.Summary.Variance.String()),
		slog.Bool("variance_flag", report.Summary.VarianceFlag))
	return report, nil
}

// reconcileDeposits computes per-deposit applied/unapplied balances as of the
// cutoff. When the detail query returns exactly the row cap, the result is
// possibly truncated: a cheaper aggregate query supplies the true count and
// total so the headline unapplied figure stays exact while the detail rows
// remain capped for display.
func (s *reconciliationService) reconcileDeposits(ctx context.Context, asOf time.Time) domain.DepositSection {
	rows, err := s.ledger.FindUnappliedDeposits(ctx, asOf, s.cfg.DetailRowLimit)
	if err != nil {
		s.LogError(ctx, err, "Deposit detail query failed, degrading to empty section",
			slog.String("asOf", asOf.Format("2006-01-02")))
		return domain.DepositSection{Rows: []domain.Deposit{}, Failed: true}
	}

	fetched := len(rows)
	deposits := make([]domain.Deposit, 0, fetched)
	visibleTotal := decimal.Zero
	for _, d := range rows {
		if !d.DeriveUnapplied() {
			continue
		}
		visibleTotal = visibleTotal.Add(d.AmountUnapplied)
		deposits = append(deposits, d)
	}

	section := domain.DepositSection{
		Rows:           deposits,
		TotalUnapplied: visibleTotal,
	}

	if fetched == s.cfg.DetailRowLimit {
		section.IsTruncated = true
		count, total, aggErr := s.ledger.AggregateUnappliedDeposits(ctx, asOf)
		if aggErr != nil {
			// The visible-row sum understates the true total here; nothing
			// better is available once both queries have had their chance.
			s.LogError(ctx, aggErr, "Deposit aggregate query failed after truncated detail query, totals are best effort",
				slog.String("asOf", asOf.Format("2006-01-02")),
				slog.Int("visible_rows", len(deposits)))
			return section
		}
		section.ActualCount = count
		section.ActualTotalUnapplied = total
		section.TotalUnapplied = total
	}

	return section
}

// reconcileCreditMemos computes unapplied overpayment balances for active,
// deposit-originated credit memos as of the cutoff. Volumes are assumed to
// stay below the detail row cap, so no truncation handling is applied.
func (s *reconciliationService) reconcileCreditMemos(ctx context.Context, asOf time.Time) domain.CreditMemoSection {
	rows, err := s.ledger.FindUnappliedCreditMemos(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Credit memo query failed, degrading to empty section",
			slog.String("asOf", asOf.Format("2006-01-02")))
		return domain.CreditMemoSection{Rows: []domain.CreditMemo{}, Failed: true}
	}

	memos := make([]domain.CreditMemo, 0, len(rows))
	total := decimal.Zero
	for _, m := range rows {
		if !m.DeriveUnapplied() {
			continue
		}
		total = total.Add(m.AmountUnapplied)
		memos = append(memos, m)
	}

	return domain.CreditMemoSection{
		Rows:           memos,
		TotalUnapplied: total,
	}
}

// journalAdjustments computes the net ledger impact of manual journal entries
// posted to the deposits account since the cutover date. The window runs from
// cutover to now and is intentionally not bounded by the report cutoff; that
// asymmetry matches the source system's behavior.
func (s *reconciliationService) journalAdjustments(ctx context.Context) domain.JournalSection {
	lines, err := s.ledger.FindJournalLines(ctx, s.cfg.DepositsAccountCode, s.cfg.CutoverDate)
	if err != nil {
		s.LogError(ctx, err, "Journal line query failed, degrading to empty section",
			slog.String("account", s.cfg.DepositsAccountCode))
		return domain.JournalSection{Lines: []domain.JournalLine{}, Failed: true}
	}

	for i := range lines {
		lines[i].DeriveNet()
	}
	domain.RecomputeRunningTotals(lines)

	return domain.JournalSection{
		Lines:  lines,
		Impact: domain.JournalImpact(lines),
	}
}

// glBalance queries the posting balance for the deposits account as of the
// cutoff, intentionally bypassing the deposit-application logic so it serves
// as an independent cross-check.
func (s *reconciliationService) glBalance(ctx context.Context, asOf time.Time) (decimal.Decimal, bool) {
	balance, err := s.ledger.GetGLBalance(ctx, s.cfg.DepositsAccountCode, asOf)
	if err != nil {
		s.LogError(ctx, err, "GL balance query failed, degrading to zero",
			slog.String("account", s.cfg.DepositsAccountCode),
			slog.String("asOf", asOf.Format("2006-01-02")))
		return decimal.Zero, true
	}
	return balance, false
}
