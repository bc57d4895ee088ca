package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsledger/deposit_recon_app/internal/core/domain"
	portsrepo "github.com/opsledger/deposit_recon_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ledgerRepository implements the LedgerReader interface against the
// transactional accounting schema. All queries are read-only.
type ledgerRepository struct {
	BaseRepository
	// depositDateCutover is the migration boundary before which a deposit's
	// native recorded date is unreliable and the sales order date is used
	// instead.
	depositDateCutover time.Time
}

// newLedgerRepository creates a new ledger repository
func newLedgerRepository(db *pgxpool.Pool, depositDateCutover time.Time) portsrepo.LedgerReader {
	return &ledgerRepository{
		BaseRepository:     BaseRepository{Pool: db},
		depositDateCutover: depositDateCutover,
	}
}

// NewRepositoryProvider wires every repository over the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool, depositDateCutover time.Time) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo: newLedgerRepository(dbPool, depositDateCutover),
	}
}

// FindUnappliedDeposits retrieves deposits dated on or before asOf that still
// carry a positive unapplied balance. AmountApplied sums only application
// transactions dated on or before asOf, which is what makes the report a
// point-in-time snapshot rather than a current-state view. The report date is
// policy-adjusted: deposits recorded before the cutover take their sales
// order's date.
func (r *ledgerRepository) FindUnappliedDeposits(ctx context.Context, asOf time.Time, limit int) ([]domain.Deposit, error) {
	query := `
		SELECT
			d.deposit_id,
			d.deposit_number,
			CASE
				WHEN d.deposit_date < $2 AND so.order_date IS NOT NULL THEN so.order_date
				ELSE d.deposit_date
			END AS report_date,
			d.amount,
			d.status,
			d.sales_order_id,
			so.order_date,
			so.status,
			so.department,
			so.sales_rep,
			COALESCE(SUM(da.amount) FILTER (WHERE da.applied_date <= $1), 0) AS amount_applied
		FROM deposits d
		LEFT JOIN sales_orders so ON so.sales_order_id = d.sales_order_id
		LEFT JOIN deposit_applications da ON da.deposit_id = d.deposit_id
		WHERE d.deposit_date <= $1
		GROUP BY d.deposit_id, d.deposit_number, d.deposit_date, d.amount, d.status,
			d.sales_order_id, so.order_date, so.status, so.department, so.sales_rep
		HAVING d.amount - COALESCE(SUM(da.amount) FILTER (WHERE da.applied_date <= $1), 0) > 0
		ORDER BY report_date DESC
		LIMIT $3
	`

	rows, err := r.Pool.Query(ctx, query, asOf, r.depositDateCutover, limit)
	if err != nil {
		return nil, queryErr("querying unapplied deposits", err)
	}
	defer rows.Close()

	var result []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		var status string

		if err := rows.Scan(
			&d.DepositID,
			&d.DepositNumber,
			&d.Date,
			&d.Amount,
			&status,
			&d.SalesOrderID,
			&d.SalesOrderDate,
			&d.SalesOrderStatus,
			&d.Department,
			&d.SalesRep,
			&d.AmountApplied,
		); err != nil {
			return nil, queryErr("scanning unapplied deposit row", err)
		}

		d.Status = domain.DepositStatus(status)
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, queryErr("iterating unapplied deposit rows", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.Deposit{}, nil
	}

	return result, nil
}

// AggregateUnappliedDeposits retrieves the true row count and total unapplied
// amount across the entire matching set, with no per-row detail. It is issued
// when the detail query hits its row cap so the headline total stays exact.
func (r *ledgerRepository) AggregateUnappliedDeposits(ctx context.Context, asOf time.Time) (int64, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(u.unapplied), 0)
		FROM (
			SELECT d.amount - COALESCE(SUM(da.amount) FILTER (WHERE da.applied_date <= $1), 0) AS unapplied
			FROM deposits d
			LEFT JOIN deposit_applications da ON da.deposit_id = d.deposit_id
			WHERE d.deposit_date <= $1
			GROUP BY d.deposit_id, d.amount
			HAVING d.amount - COALESCE(SUM(da.amount) FILTER (WHERE da.applied_date <= $1), 0) > 0
		) u
	`

	var count int64
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, asOf).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, queryErr("aggregating unapplied deposits", err)
	}

	return count, total, nil
}

// FindUnappliedCreditMemos retrieves active, deposit-originated credit memos
// dated on or before asOf whose linked-amount-adjusted unapplied balance is
// positive, joined to the originating deposit and the customer's denormalized
// balances.
func (r *ledgerRepository) FindUnappliedCreditMemos(ctx context.Context, asOf time.Time) ([]domain.CreditMemo, error) {
	query := `
		SELECT
			cm.credit_memo_id,
			cm.memo_number,
			cm.memo_date,
			cm.amount,
			cm.status,
			cm.origin_deposit_id,
			od.deposit_number,
			cm.sales_order_id,
			cm.overpayment_date,
			c.customer_id,
			c.name,
			c.receivables_balance,
			c.deposit_balance,
			c.unbilled_orders_balance,
			cm.amount_linked
		FROM credit_memos cm
		JOIN customers c ON c.customer_id = cm.customer_id
		LEFT JOIN deposits od ON od.deposit_id = cm.origin_deposit_id
		WHERE cm.status = 'OPEN'
			AND cm.origin_deposit_id IS NOT NULL
			AND cm.memo_date <= $1
			AND ABS(cm.amount) - cm.amount_linked > 0
		ORDER BY cm.memo_date DESC
	`

	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, queryErr("querying unapplied credit memos", err)
	}
	defer rows.Close()

	var result []domain.CreditMemo
	for rows.Next() {
		var m domain.CreditMemo
		var status string

		if err := rows.Scan(
			&m.CreditMemoID,
			&m.MemoNumber,
			&m.Date,
			&m.Amount,
			&status,
			&m.OriginDepositID,
			&m.OriginDepositNumber,
			&m.SalesOrderID,
			&m.OverpaymentDate,
			&m.CustomerID,
			&m.CustomerName,
			&m.ReceivablesBalance,
			&m.DepositBalance,
			&m.UnbilledOrdersBalance,
			&m.AmountLinked,
		); err != nil {
			return nil, queryErr("scanning credit memo row", err)
		}

		m.Status = domain.CreditMemoStatus(status)
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, queryErr("iterating credit memo rows", err)
	}

	if len(result) == 0 {
		return []domain.CreditMemo{}, nil
	}

	return result, nil
}

// FindJournalLines retrieves manual journal postings to the account dated on
// or after since, newest first. Ties on posting date break on posting ID so
// the fetch order is stable.
func (r *ledgerRepository) FindJournalLines(ctx context.Context, accountCode string, since time.Time) ([]domain.JournalLine, error) {
	query := `
		SELECT
			p.posting_id,
			p.document_number,
			p.posting_date,
			COALESCE(p.memo, ''),
			p.debit,
			p.credit
		FROM gl_postings p
		WHERE p.account_code = $1
			AND p.source_type = 'JOURNAL'
			AND p.posting_date >= $2
		ORDER BY p.posting_date DESC, p.posting_id DESC
	`

	rows, err := r.Pool.Query(ctx, query, accountCode, since)
	if err != nil {
		return nil, queryErr("querying journal lines", err)
	}
	defer rows.Close()

	var result []domain.JournalLine
	for rows.Next() {
		var l domain.JournalLine

		if err := rows.Scan(
			&l.JournalID,
			&l.JournalNumber,
			&l.Date,
			&l.Memo,
			&l.Debit,
			&l.Credit,
		); err != nil {
			return nil, queryErr("scanning journal line row", err)
		}

		result = append(result, l)
	}

	if err := rows.Err(); err != nil {
		return nil, queryErr("iterating journal line rows", err)
	}

	if len(result) == 0 {
		return []domain.JournalLine{}, nil
	}

	return result, nil
}

// GetGLBalance retrieves the posting balance for the account as of the
// cutoff, summed from raw posting lines. This intentionally bypasses the
// deposit-application logic so it serves as an independent cross-check.
func (r *ledgerRepository) GetGLBalance(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.debit - p.credit), 0)
		FROM gl_postings p
		WHERE p.account_code = $1
			AND p.posting_date <= $2
	`

	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountCode, asOf).Scan(&balance); err != nil {
		return decimal.Zero, queryErr("querying GL balance", err)
	}

	return balance, nil
}
