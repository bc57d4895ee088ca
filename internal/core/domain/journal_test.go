package domain_test

import (
	"sort"
	"testing"
	"time"

	"github.com/opsledger/deposit_recon_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func journalLine(id, date, debit, credit string) domain.JournalLine {
	d, _ := time.Parse("2006-01-02", date)
	l := domain.JournalLine{
		JournalID:     id,
		JournalNumber: "JE-" + id,
		Date:          d,
		Debit:         decimal.RequireFromString(debit),
		Credit:        decimal.RequireFromString(credit),
	}
	l.DeriveNet()
	return l
}

func TestJournalLine_DeriveNet(t *testing.T) {
	tests := []struct {
		name   string
		debit  string
		credit string
		want   string
	}{
		{name: "debit only", debit: "150.00", credit: "0", want: "150.00"},
		{name: "credit only", debit: "0", credit: "75.50", want: "-75.50"},
		{name: "both sides", debit: "100.00", credit: "40.00", want: "60.00"},
		{name: "zero line", debit: "0", credit: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := domain.JournalLine{
				Debit:  decimal.RequireFromString(tt.debit),
				Credit: decimal.RequireFromString(tt.credit),
			}
			l.DeriveNet()
			assert.True(t, l.NetAmount.Equal(decimal.RequireFromString(tt.want)),
				"net: got %s, want %s", l.NetAmount, tt.want)
		})
	}
}

func TestRecomputeRunningTotals(t *testing.T) {
	lines := []domain.JournalLine{
		journalLine("3", "2023-03-01", "0", "500.00"),
		journalLine("2", "2023-02-01", "200.00", "0"),
		journalLine("1", "2023-01-01", "0", "1000.00"),
	}

	domain.RecomputeRunningTotals(lines)

	require.Len(t, lines, 3)
	assert.True(t, lines[0].RunningTotal.Equal(decimal.RequireFromString("-500.00")))
	assert.True(t, lines[1].RunningTotal.Equal(decimal.RequireFromString("-300.00")))
	assert.True(t, lines[2].RunningTotal.Equal(decimal.RequireFromString("-1300.00")))
}

func TestRecomputeRunningTotals_OrderDependent(t *testing.T) {
	lines := []domain.JournalLine{
		journalLine("3", "2023-03-01", "0", "500.00"),
		journalLine("2", "2023-02-01", "200.00", "0"),
		journalLine("1", "2023-01-01", "0", "1000.00"),
	}
	domain.RecomputeRunningTotals(lines)
	impactBefore := domain.JournalImpact(lines)

	// Re-sort oldest first and recompute; intermediate totals change but the
	// final cumulative value and the impact do not.
	sort.Slice(lines, func(i, j int) bool { return lines[i].Date.Before(lines[j].Date) })
	domain.RecomputeRunningTotals(lines)

	assert.True(t, lines[0].RunningTotal.Equal(decimal.RequireFromString("-1000.00")))
	assert.True(t, lines[1].RunningTotal.Equal(decimal.RequireFromString("-800.00")))
	assert.True(t, lines[2].RunningTotal.Equal(decimal.RequireFromString("-1300.00")))
	assert.True(t, domain.JournalImpact(lines).Equal(impactBefore))
}

func TestRecomputeRunningTotals_RoundTripResort(t *testing.T) {
	lines := []domain.JournalLine{
		journalLine("3", "2023-03-01", "0", "500.00"),
		journalLine("2", "2023-02-01", "200.00", "0"),
		journalLine("1", "2023-01-01", "0", "1000.00"),
	}
	domain.RecomputeRunningTotals(lines)

	original := make([]decimal.Decimal, len(lines))
	for i := range lines {
		original[i] = lines[i].RunningTotal
	}

	// Re-sort ascending then back to descending; the recomputed sequence must
	// match the original exactly.
	sort.Slice(lines, func(i, j int) bool { return lines[i].Date.Before(lines[j].Date) })
	domain.RecomputeRunningTotals(lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].Date.After(lines[j].Date) })
	domain.RecomputeRunningTotals(lines)

	require.Len(t, lines, len(original))
	for i := range lines {
		assert.True(t, lines[i].RunningTotal.Equal(original[i]),
			"line %d: got %s, want %s", i, lines[i].RunningTotal, original[i])
	}
}

func TestJournalImpact(t *testing.T) {
	assert.True(t, domain.JournalImpact(nil).IsZero())
	assert.True(t, domain.JournalImpact([]domain.JournalLine{}).IsZero())

	lines := []domain.JournalLine{
		journalLine("1", "2023-01-01", "0", "1000.00"),
		journalLine("2", "2023-02-01", "200.00", "0"),
	}
	assert.True(t, domain.JournalImpact(lines).Equal(decimal.RequireFromString("-800.00")))
}
