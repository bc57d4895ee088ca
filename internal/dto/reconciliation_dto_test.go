package dto_test

import (
	"testing"
	"time"

	"github.com/opsledger/deposit_recon_app/internal/core/domain"
	"github.com/opsledger/deposit_recon_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeferredReportResponse(t *testing.T) {
	asOf, _ := time.Parse("2006-01-02", "2025-06-30")

	response := dto.NewDeferredReportResponse(asOf)

	assert.False(t, response.Loaded)
	assert.Equal(t, "2025-06-30", response.AsOf)
	assert.NotNil(t, response.Deposits.Rows)
	assert.Empty(t, response.Deposits.Rows)
	assert.NotNil(t, response.CreditMemos.Rows)
	assert.NotNil(t, response.Journal.Lines)
}

func TestToUnappliedDepositsReportResponse_VisibleTotals(t *testing.T) {
	asOf, _ := time.Parse("2006-01-02", "2025-06-30")
	soID := "SO-77"
	soDate := asOf.AddDate(0, -3, 0)

	report := &domain.ReconciliationReport{
		AsOf: asOf,
		Deposits: domain.DepositSection{
			Rows: []domain.Deposit{
				{
					DepositID:       "d1",
					DepositNumber:   "DEP-1",
					Date:            asOf.AddDate(0, -1, 0),
					Amount:          decimal.RequireFromString("1000.00"),
					Status:          domain.DepositStatusDeposited,
					SalesOrderID:    &soID,
					SalesOrderDate:  &soDate,
					AmountApplied:   decimal.RequireFromString("400.00"),
					AmountUnapplied: decimal.RequireFromString("600.00"),
				},
				{
					DepositID:       "d2",
					DepositNumber:   "DEP-2",
					Date:            asOf.AddDate(0, -2, 0),
					Amount:          decimal.RequireFromString("250.00"),
					Status:          domain.DepositStatusNotDeposited,
					AmountApplied:   decimal.Zero,
					AmountUnapplied: decimal.RequireFromString("250.00"),
				},
			},
			// Truncated section: the headline total comes from the aggregate
			// and exceeds the visible-row sum.
			IsTruncated:          true,
			ActualCount:          5412,
			ActualTotalUnapplied: decimal.RequireFromString("812300.50"),
			TotalUnapplied:       decimal.RequireFromString("812300.50"),
		},
		GLBalance: decimal.Zero,
	}

	response := dto.ToUnappliedDepositsReportResponse(report)

	assert.True(t, response.Loaded)
	require.Len(t, response.Deposits.Rows, 2)

	assert.True(t, response.Deposits.VisibleAmountTotal.Equal(decimal.RequireFromString("1250.00")))
	assert.True(t, response.Deposits.VisibleAppliedTotal.Equal(decimal.RequireFromString("400.00")))
	assert.True(t, response.Deposits.VisibleUnappliedTotal.Equal(decimal.RequireFromString("850.00")))
	assert.True(t, response.Deposits.TotalUnapplied.Equal(decimal.RequireFromString("812300.50")))
	assert.True(t, response.Deposits.IsTruncated)
	assert.Equal(t, int64(5412), response.Deposits.ActualCount)

	first := response.Deposits.Rows[0]
	assert.Equal(t, "2025-05-30", first.Date)
	assert.Equal(t, "Deposited", first.StatusLabel)
	require.NotNil(t, first.SalesOrderDate)
	assert.Equal(t, "2025-03-30", *first.SalesOrderDate)
	assert.Nil(t, response.Deposits.Rows[1].SalesOrderDate)
}
