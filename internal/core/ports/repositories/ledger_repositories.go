package repositories

import (
	"context"
	"time"

	"github.com/opsledger/deposit_recon_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader is the read-only port onto the transactional accounting store.
// Detail queries are subject to a row cap enforced by the caller-supplied
// limit; implementations must preserve the documented orderings. A failing
// query returns an error wrapping apperrors.ErrQueryFailed so engines can
// degrade to an empty section instead of aborting the report.
type LedgerReader interface {
	// FindUnappliedDeposits returns deposits dated on or before asOf that
	// still carry a positive unapplied balance, ordered by policy-adjusted
	// date descending, at most limit rows. AmountApplied counts only
	// application transactions dated on or before asOf.
	FindUnappliedDeposits(ctx context.Context, asOf time.Time, limit int) ([]domain.Deposit, error)

	// AggregateUnappliedDeposits returns the true row count and total
	// unapplied amount across the entire matching set, with no per-row
	// detail. Used when the detail query hits its row cap.
	AggregateUnappliedDeposits(ctx context.Context, asOf time.Time) (int64, decimal.Decimal, error)

	// FindUnappliedCreditMemos returns active, deposit-originated credit
	// memos dated on or before asOf with a positive unapplied balance,
	// ordered by date descending.
	FindUnappliedCreditMemos(ctx context.Context, asOf time.Time) ([]domain.CreditMemo, error)

	// FindJournalLines returns manual journal postings to the account dated
	// on or after since, ordered by posting date descending.
	FindJournalLines(ctx context.Context, accountCode string, since time.Time) ([]domain.JournalLine, error)

	// GetGLBalance returns the posting balance (sum of debit minus credit)
	// for the account as of the cutoff, computed from raw posting lines.
	GetGLBalance(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error)
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LedgerRepo LedgerReader
}
