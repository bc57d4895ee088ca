package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/opsledger/deposit_recon_app/internal/apperrors"
	"github.com/opsledger/deposit_recon_app/internal/core/domain"
	portsrepo "github.com/opsledger/deposit_recon_app/internal/core/ports/repositories"
	"github.com/opsledger/deposit_recon_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock LedgerReader ---
type MockLedgerReader struct {
	mock.Mock
}

// Ensure MockLedgerReader implements portsrepo.LedgerReader
var _ portsrepo.LedgerReader = (*MockLedgerReader)(nil)

func (m *MockLedgerReader) FindUnappliedDeposits(ctx context.Context, asOf time.Time, limit int) ([]domain.Deposit, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deposit), args.Error(1)
}

func (m *MockLedgerReader) AggregateUnappliedDeposits(ctx context.Context, asOf time.Time) (int64, decimal.Decimal, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockLedgerReader) FindUnappliedCreditMemos(ctx context.Context, asOf time.Time) ([]domain.CreditMemo, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditMemo), args.Error(1)
}

func (m *MockLedgerReader) FindJournalLines(ctx context.Context, accountCode string, since time.Time) ([]domain.JournalLine, error) {
	args := m.Called(ctx, accountCode, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockLedgerReader) GetGLBalance(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test fixtures ---

var (
	testAsOf    = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	testCutover = time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)
)

func testConfig(detailLimit int) services.ReconciliationConfig {
	return services.ReconciliationConfig{
		DepositsAccountCode: "2050",
		CutoverDate:         testCutover,
		DetailRowLimit:      detailLimit,
		VarianceTolerance:   decimal.RequireFromString("0.01"),
	}
}

func testDeposit(id, amount, applied string) domain.Deposit {
	return domain.Deposit{
		DepositID:     id,
		DepositNumber: "DEP-" + id,
		Date:          testAsOf.AddDate(0, -1, 0),
		Amount:        decimal.RequireFromString(amount),
		Status:        domain.DepositStatusDeposited,
		AmountApplied: decimal.RequireFromString(applied),
	}
}

func testCreditMemo(id, amount, linked string) domain.CreditMemo {
	originID := "DEP-" + id
	return domain.CreditMemo{
		CreditMemoID:    id,
		MemoNumber:      "CM-" + id,
		Date:            testAsOf.AddDate(0, -2, 0),
		Amount:          decimal.RequireFromString(amount),
		Status:          domain.CreditMemoStatusOpen,
		OriginDepositID: &originID,
		CustomerID:      "cust-1",
		CustomerName:    "Acme Corp",
		AmountLinked:    decimal.RequireFromString(linked),
	}
}

func testJournalLine(id, debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		JournalID:     id,
		JournalNumber: "JE-" + id,
		Date:          testCutover.AddDate(0, 6, 0),
		Debit:         decimal.RequireFromString(debit),
		Credit:        decimal.RequireFromString(credit),
	}
}

// --- Tests ---

func TestUnappliedDepositsReport_Success(t *testing.T) {
	mockLedger := new(MockLedgerReader)
	svc := services.NewReconciliationService(mockLedger, testConfig(5000))

	mockLedger.On("FindUnappliedDeposits", mock.Anything, testAsOf, 5000).
		Return([]domain.Deposit{
			testDeposit("1", "1000.00", "400.00"),
			testDeposit("2", "250.00", "0"),
		}, nil)
	mockLedger.On("FindUnappliedCreditMemos", mock.Anything, testAsOf).
		Return([]domain.CreditMemo{
			testCreditMemo("9", "-500.00", "200.00"),
		}, nil)
	mockLedger.On("FindJournalLines", mock.Anything, "2050", testCutover).
		Return([]domain.JournalLine{
			testJournalLine("j1", "0", "150.00"),
		}, nil)
	mockLedger.On("GetGLBalance", mock.Anything, "2050", testAsOf).
		Return(decimal.RequireFromString("1000.00"), nil)

	report, err := svc.UnappliedDepositsReport(context.Background(), testAsOf)

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, testAsOf, report.AsOf)

	require.Len(t, report.Deposits.Rows, 2)
	assert.False(t, report.Deposits.IsTruncated)
	assert.False(t, report.Deposits.Failed)
	assert.True(t, report.Deposits.Rows[0].AmountUnapplied.Equal(decimal.RequireFromString("600.00")))
	assert.True(t, report.Deposits.TotalUnapplied.Equal(decimal.RequireFromString("850.00")))

	require.Len(t, report.CreditMemos.Rows, 1)
	assert.True(t, report.CreditMemos.TotalUnapplied.Equal(decimal.RequireFromString("300.00")))

	require.Len(t, report.Journal.Lines, 1)
	assert.True(t, report.Journal.Impact.Equal(decimal.RequireFromString("-150.00")))
	assert.True(t, report.Journal.Lines[0].RunningTotal.Equal(decimal.RequireFromString("-150.00")))

	assert.False(t, report.GLBalanceFailed)
	// adjusted = 850 - (-150) = 1000 = GL balance
	assert.True(t, report.Summary.AdjustedTotal.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, report.Summary.Variance.IsZero())
	assert.False(t, report.Summary.VarianceFlag)

	mockLedger.AssertNotCalled(t, "AggregateUnappliedDeposits", mock.Anything, mock.Anything)
	mockLedger.AssertExpectations(t)
}

func TestUnappliedDepositsReport_TruncationTriggersAggregate(t *testing.T) {
	const limit = 3
	mockLedger := new(MockLedgerReader)
	svc := services.NewReconciliationService(mockLedger, testConfig(limit))

	capped := make([]domain.Deposit, limit)
	for i := range capped {
		capped[i] = testDeposit(fmt.Sprintf("%d", i+1), "100.00", "0")
	}

	mockLedger.On("FindUnappliedDeposits", mock.Anything, testAsOf, limit).Return(capped, nil)
	mockLedger.On("AggregateUnappliedDeposits", mock.Anything, testAsOf).
		Return(int64(5412), decimal.RequireFromString("812300.50"), nil)
	mockLedger.On("FindUnappliedCreditMemos", mock.Anything, testAsOf).Return([]domain.CreditMemo{}, nil)
	mockLedger.On("FindJournalLines", mock.Anything, "2050", testCutover).Return([]domain.JournalLine{}, nil)
	mockLedger.On("GetGLBalance", mock.Anything, "2050", testAsOf).Return(decimal.Zero, nil)

	report, err := svc.UnappliedDepositsReport(context.Background(), testAsOf)

	require.NoError(t, err)
	assert.True(t, report.Deposits.IsTruncated)
	assert.Len(t, report.Deposits.Rows, limit)
	assert.Equal(t, int64(5412), report.Deposits.ActualCount)
	assert.True(t, report.Deposits.ActualTotalUnapplied.Equal(decimal.RequireFromString("812300.50")))
	// The headline total comes from the aggregate, not the visible rows.
	assert.True(t, report.Deposits.TotalUnapplied.Equal(decimal.RequireFromString("812300.50")))
	assert.True(t, report.Summary.TotalUnappliedDeposits.Equal(decimal.RequireFromString("812300.50")))

	mockLedger.AssertExpectations(t)
}

func TestUnappliedDepositsReport_AggregateFailureKeepsVisibleTotals(t *testing.T) {
	const limit = 2
	mockLedger := new(MockLedgerReader)
	svc := services.NewReconciliationService(mockLedger, testConfig(limit))

	mockLedger.On("FindUnappliedDeposits", mock.Anything, testAsOf, limit).
		Return([]domain.Deposit{
			testDeposit("1", "100.00", "0"),
			testDeposit("2", "50.00", "0"),
		}, nil)
	mockLedger.On("AggregateUnappliedDeposits", mock.Anything, testAsOf).
		Return(int64(0), decimal.Zero, fmt.Errorf("%w: aggregating unapplied deposits: %v", apperrors.ErrQueryFailed, assert.AnError))
	mockLedger.On("FindUnappliedCreditMemos", mock.Anything, testAsOf).Return([]domain.CreditMemo{}, nil)
	mockLedger.On("FindJournalLines", mock.Anything, "2050", testCutover).Return([]domain.JournalLine{}, nil)
	mockLedger.On("GetGLBalance", mock.Anything, "2050", testAsOf).Return(decimal.Zero, nil)

	report, err := svc.UnappliedDepositsReport(context.Background(), testAsOf)

	require.NoError(t, err)
	// Truncation stays flagged and the visible-row sum is the best available
	// total.
	assert.True(t, report.Deposits.IsTruncated)
	assert.False(t, report.Deposits.Failed)
	assert.Equal(t, int64(0), report.Deposits.ActualCount)
	assert.True(t, report.Deposits.TotalUnapplied.Equal(decimal.RequireFromString("150.00")))

	mockLedger.AssertExpectations(t)
}

func TestUnappliedDepositsReport_SectionsDegradeIndependently(t *testing.T) {
	mockLedger := new(MockLedgerReader)
	svc := services.NewReconciliationService(mockLedger, testConfig(5000))

	queryErr := fmt.Errorf("%w: querying unapplied deposits: %v", apperrors.ErrQueryFailed, assert.AnError)
	mockLedger.On("FindUnappliedDeposits", mock.Anything, testAsOf, 5000).Return(nil, queryErr)
	mockLedger.On("FindUnappliedCreditMemos", mock.Anything, testAsOf).Return(nil, queryErr)
	mockLedger.On("FindJournalLines", mock.Anything, "2050", testCutover).Return(nil, queryErr)
	mockLedger.On("GetGLBalance", mock.Anything, "2050", testAsOf).Return(decimal.Zero, queryErr)

	report, err := svc.UnappliedDepositsReport(context.Background(), testAsOf)

	require.NoError(t, err, "query failures degrade sections, they never abort the report")
	require.NotNil(t, report)

	assert.True(t, report.Deposits.Failed)
	assert.Empty(t, report.Deposits.Rows)
	assert.True(t, report.CreditMemos.Failed)
	assert.Empty(t, report.CreditMemos.Rows)
	assert.True(t, report.Journal.Failed)
	assert.Empty(t, report.Journal.Lines)
	assert.True(t, report.GLBalanceFailed)
	assert.True(t, report.GLBalance.IsZero())

	// All-zero inputs reconcile trivially.
	assert.True(t, report.Summary.Variance.IsZero())
	assert.False(t, report.Summary.VarianceFlag)

	mockLedger.AssertExpectations(t)
}

func TestUnappliedDepositsReport_FiltersNonPositiveBalances(t *testing.T) {
	mockLedger := new(MockLedgerReader)
	svc := services.NewReconciliationService(mockLedger, testConfig(5000))

	mockLedger.On("FindUnappliedDeposits", mock.Anything, testAsOf, 5000).
		Return([]domain.Deposit{
			testDeposit("1", "1000.00", "400.00"),
			testDeposit("2", "500.00", "500.00"),
		}, nil)
	mockLedger.On("FindUnappliedCreditMemos", mock.Anything, testAsOf).
		Return([]domain.CreditMemo{
			testCreditMemo("9", "-300.00", "100.00"),
			testCreditMemo("10", "-200.00", "200.00"),
		}, nil)
	mockLedger.On("FindJournalLines", mock.Anything, "2050", testCutover).Return([]domain.JournalLine{}, nil)
	mockLedger.On("GetGLBalance", mock.Anything, "2050", testAsOf).Return(decimal.Zero, nil)

	report, err := svc.UnappliedDepositsReport(context.Background(), testAsOf)

	require.NoError(t, err)
	require.Len(t, report.Deposits.Rows, 1)
	assert.Equal(t, "1", report.Deposits.Rows[0].DepositID)
	require.Len(t, report.CreditMemos.Rows, 1)
	assert.Equal(t, "9", report.CreditMemos.Rows[0].CreditMemoID)
	assert.True(t, report.CreditMemos.TotalUnapplied.Equal(decimal.RequireFromString("200.00")))

	mockLedger.AssertExpectations(t)
}

func TestUnappliedDepositsReport_CancelledContext(t *testing.T) {
	mockLedger := new(MockLedgerReader)
	svc := services.NewReconciliationService(mockLedger, testConfig(5000))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cancelErr := ctx.Err()
	mockLedger.On("FindUnappliedDeposits", mock.Anything, testAsOf, 5000).Return(nil, cancelErr)
	mockLedger.On("FindUnappliedCreditMemos", mock.Anything, testAsOf).Return(nil, cancelErr)
	mockLedger.On("FindJournalLines", mock.Anything, "2050", testCutover).Return(nil, cancelErr)
	mockLedger.On("GetGLBalance", mock.Anything, "2050", testAsOf).Return(decimal.Zero, cancelErr)

	report, err := svc.UnappliedDepositsReport(ctx, testAsOf)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

func TestUnappliedDepositsReport_JournalRunningTotals(t *testing.T) {
	mockLedger := new(MockLedgerReader)
	svc := services.NewReconciliationService(mockLedger, testConfig(5000))

	mockLedger.On("FindUnappliedDeposits", mock.Anything, testAsOf, 5000).Return([]domain.Deposit{}, nil)
	mockLedger.On("FindUnappliedCreditMemos", mock.Anything, testAsOf).Return([]domain.CreditMemo{}, nil)
	mockLedger.On("FindJournalLines", mock.Anything, "2050", testCutover).
		Return([]domain.JournalLine{
			testJournalLine("j1", "0", "500.00"),
			testJournalLine("j2", "200.00", "0"),
			testJournalLine("j3", "0", "1000.00"),
		}, nil)
	mockLedger.On("GetGLBalance", mock.Anything, "2050", testAsOf).Return(decimal.Zero, nil)

	report, err := svc.UnappliedDepositsReport(context.Background(), testAsOf)

	require.NoError(t, err)
	require.Len(t, report.Journal.Lines, 3)
	assert.True(t, report.Journal.Lines[0].RunningTotal.Equal(decimal.RequireFromString("-500.00")))
	assert.True(t, report.Journal.Lines[1].RunningTotal.Equal(decimal.RequireFromString("-300.00")))
	assert.True(t, report.Journal.Lines[2].RunningTotal.Equal(decimal.RequireFromString("-1300.00")))
	assert.True(t, report.Journal.Impact.Equal(decimal.RequireFromString("-1300.00")))

	mockLedger.AssertExpectations(t)
}
