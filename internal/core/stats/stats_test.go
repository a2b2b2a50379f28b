package stats_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/nunsahui/cafeledger/internal/core/stats"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(amount int64, category string, at time.Time) stats.Txn {
	return stats.Txn{Amount: decimal.NewFromInt(amount), Category: category, At: at}
}

// randomTxns is a demo-data fixture generator. It exists only for tests and is
// never part of a production data path. Timestamps are confined to the six
// calendar months ending at around: each one lands on day 1-28 of a month at
// most five months back, so every record falls inside a six-month series
// window anchored at around.
func randomTxns(rng *rand.Rand, n int, around time.Time) []stats.Txn {
	categories := []string{"Printing Services", "Table Water", "Pure Water", "Others"}
	txns := make([]stats.Txn, n)
	for i := range txns {
		monthStart := time.Date(around.Year(), around.Month()-time.Month(rng.Intn(6)), 1, 12, 0, 0, 0, around.Location())
		txns[i] = stats.Txn{
			Amount:   decimal.NewFromInt(rng.Int63n(10000) + 1),
			Category: categories[rng.Intn(len(categories))],
			At:       monthStart.AddDate(0, 0, rng.Intn(28)),
		}
	}
	return txns
}

func TestSumMonthlyPredicate(t *testing.T) {
	// Income of 5000 recorded 2025-01-15 must be picked up by the January
	// 2025 month predicate.
	at := time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)
	txns := []stats.Txn{tx(5000, "Printing Services", at)}

	got := stats.Sum(txns, stats.InMonth(2025, time.January, time.UTC))
	assert.True(t, got.Equal(decimal.NewFromInt(5000)), "got %s", got)

	got = stats.Sum(txns, stats.InMonth(2025, time.February, time.UTC))
	assert.True(t, got.IsZero())
}

func TestSumEmptyInput(t *testing.T) {
	now := time.Now()
	assert.True(t, stats.Sum(nil, stats.Lifetime()).IsZero())
	assert.True(t, stats.Sum(nil, stats.Today(now)).IsZero())
	assert.Empty(t, stats.CategoryBreakdown(nil))
}

func TestTodayPredicateBoundaries(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	p := stats.Today(now)

	assert.True(t, p(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p(time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p(time.Date(2025, time.March, 9, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)))
}

func TestCategoryBreakdownDistinctColors(t *testing.T) {
	now := time.Now()
	txns := []stats.Txn{
		tx(1000, "Printing Services", now),
		tx(2000, "Table Water", now),
	}

	slices := stats.CategoryBreakdown(txns)
	require.Len(t, slices, 2)

	total := slices[0].Amount.Add(slices[1].Amount)
	assert.True(t, total.Equal(decimal.NewFromInt(3000)))
	assert.NotEqual(t, slices[0].Color, slices[1].Color)
	// First-seen order is preserved.
	assert.Equal(t, "Printing Services", slices[0].Name)
	assert.Equal(t, "Table Water", slices[1].Name)
}

func TestCategoryBreakdownSumsMatchTotals(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	txns := randomTxns(rng, 100, time.Now())

	total := stats.Sum(txns, stats.Lifetime())
	breakdownTotal := decimal.Zero
	for _, s := range stats.CategoryBreakdown(txns) {
		breakdownTotal = breakdownTotal.Add(s.Amount)
	}
	assert.True(t, total.Equal(breakdownTotal), "total %s, breakdown %s", total, breakdownTotal)
}

func TestMonthlySeriesEmitsZeroMonths(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	// Only one record, three months back.
	income := []stats.Txn{tx(750, "Others", time.Date(2025, time.April, 2, 9, 0, 0, 0, time.UTC))}

	series := stats.MonthlySeries(income, nil, 6, now)
	require.Len(t, series, 6)

	assert.Equal(t, "Jan", series[0].Label)
	assert.Equal(t, "Jun", series[5].Label)
	for i, p := range series {
		if p.Month == time.April {
			assert.True(t, p.Income.Equal(decimal.NewFromInt(750)))
		} else {
			assert.True(t, p.Income.IsZero(), "month index %d", i)
		}
		assert.True(t, p.Expense.IsZero())
	}
}

func TestMonthlySeriesMatchesLifetimeTotal(t *testing.T) {
	// For records confined to the series window, the per-month sums must add
	// up to the lifetime total.
	now := time.Date(2025, time.August, 20, 8, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(7))
	income := randomTxns(rng, 60, now)
	expenses := randomTxns(rng, 40, now)

	series := stats.MonthlySeries(income, expenses, 6, now)

	seriesIncome := decimal.Zero
	seriesExpense := decimal.Zero
	for _, p := range series {
		seriesIncome = seriesIncome.Add(p.Income)
		seriesExpense = seriesExpense.Add(p.Expense)
	}

	assert.True(t, seriesIncome.Equal(stats.Sum(income, stats.Lifetime())))
	assert.True(t, seriesExpense.Equal(stats.Sum(expenses, stats.Lifetime())))
}

func TestCumulativeBalance(t *testing.T) {
	series := []domain.MonthPoint{
		{Label: "Jan", Income: decimal.NewFromInt(100), Expense: decimal.NewFromInt(40)},
		{Label: "Feb", Income: decimal.NewFromInt(10), Expense: decimal.NewFromInt(50)},
		{Label: "Mar", Income: decimal.NewFromInt(0), Expense: decimal.NewFromInt(0)},
	}

	out := stats.CumulativeBalance(series)
	require.Len(t, out, 3)
	assert.True(t, out[0].Balance.Equal(decimal.NewFromInt(60)))
	assert.True(t, out[1].Balance.Equal(decimal.NewFromInt(20)))
	assert.True(t, out[2].Balance.Equal(decimal.NewFromInt(20)))
	assert.True(t, out[1].Profit.Equal(decimal.NewFromInt(-40)))
}

func TestCumulativeBalanceIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	now := time.Now()
	series := stats.MonthlySeries(randomTxns(rng, 30, now), randomTxns(rng, 30, now), 6, now)

	first := stats.CumulativeBalance(series)
	second := stats.CumulativeBalance(series)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Balance.Equal(second[i].Balance))
	}
}

func TestProfitMargin(t *testing.T) {
	margin := stats.ProfitMargin(decimal.NewFromInt(200), decimal.NewFromInt(50))
	assert.True(t, margin.Equal(decimal.NewFromInt(75)))

	assert.True(t, stats.ProfitMargin(decimal.Zero, decimal.NewFromInt(50)).IsZero())
}

func TestTotalsZeroRecords(t *testing.T) {
	got := stats.Totals(nil, nil, time.Now())
	assert.True(t, got.TodayIncome.IsZero())
	assert.True(t, got.WeeklyExpenses.IsZero())
	assert.True(t, got.MonthlyIncome.IsZero())
	assert.True(t, got.TotalIncome.IsZero())
	assert.True(t, got.CurrentBalance.IsZero())
}

func TestFromIncomeFallbackLabel(t *testing.T) {
	records := []domain.IncomeRecord{
		{Amount: decimal.NewFromInt(10), CategoryName: "", CreatedAt: time.Now()},
	}
	txns := stats.FromIncome(records)
	require.Len(t, txns, 1)
	assert.Equal(t, domain.UnknownCategoryName, txns[0].Category)
}
