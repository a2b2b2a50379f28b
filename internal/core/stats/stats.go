// Package stats derives dashboard and report figures from in-memory record
// snapshots. Every function is pure: inputs are never mutated and no store
// access happens here.
package stats

import (
	"time"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Txn is the minimal view of a financial record the aggregation functions
// need. Income and expense records both reduce to this shape.
type Txn struct {
	Amount   decimal.Decimal
	Category string
	At       time.Time
}

// FromIncome converts income records to aggregation entries. A record whose
// category join missed carries the fallback label so breakdowns stay renderable.
func FromIncome(records []domain.IncomeRecord) []Txn {
	txns := make([]Txn, len(records))
	for i, r := range records {
		name := r.CategoryName
		if name == "" {
			name = domain.UnknownCategoryName
		}
		txns[i] = Txn{Amount: r.Amount, Category: name, At: r.CreatedAt}
	}
	return txns
}

// FromExpenses converts expense records to aggregation entries.
func FromExpenses(records []domain.ExpenseRecord) []Txn {
	txns := make([]Txn, len(records))
	for i, r := range records {
		name := r.CategoryName
		if name == "" {
			name = domain.UnknownCategoryName
		}
		txns[i] = Txn{Amount: r.Amount, Category: name, At: r.CreatedAt}
	}
	return txns
}

// Predicate selects records by timestamp.
type Predicate func(time.Time) bool

// Today matches records on the same local calendar day as now.
func Today(now time.Time) Predicate {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return func(t time.Time) bool { return !t.Before(start) && t.Before(start.AddDate(0, 0, 1)) }
}

// TrailingWeek matches records within the rolling 7 days ending at now.
func TrailingWeek(now time.Time) Predicate {
	start := now.AddDate(0, 0, -7)
	return func(t time.Time) bool { return !t.Before(start) && !t.After(now) }
}

// MonthToDate matches records from the start of now's calendar month onward.
func MonthToDate(now time.Time) Predicate {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return func(t time.Time) bool { return !t.Before(start) }
}

// InMonth matches records within the given calendar month.
func InMonth(year int, month time.Month, loc *time.Location) Predicate {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)
	return func(t time.Time) bool { return !t.Before(start) && t.Before(end) }
}

// Lifetime matches every record.
func Lifetime() Predicate {
	return func(time.Time) bool { return true }
}

// Sum totals the amounts of all entries satisfying the predicate. Empty input
// yields zero, never an error.
func Sum(txns []Txn, p Predicate) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if p(t.At) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Count returns the number of entries satisfying the predicate.
func Count(txns []Txn, p Predicate) int {
	n := 0
	for _, t := range txns {
		if p(t.At) {
			n++
		}
	}
	return n
}

// palette is the fixed chart palette. Colors are assigned by first-seen
// category order within the input set so a given snapshot always renders the
// same way.
var palette = [...]string{
	"hsl(160, 84%, 35%)",
	"hsl(38, 92%, 50%)",
	"hsl(201, 96%, 42%)",
	"hsl(280, 65%, 60%)",
	"hsl(340, 75%, 55%)",
	"hsl(25, 95%, 53%)",
}

// CategoryBreakdown groups entry amounts by category display name. Categories
// appear in first-seen order; categories with no records produce no slice.
// Empty input returns an empty (non-nil) result so callers can render an
// explicit no-data state.
func CategoryBreakdown(txns []Txn) []domain.CategorySlice {
	order := make([]string, 0)
	sums := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	slices := make([]domain.CategorySlice, len(order))
	for i, name := range order {
		slices[i] = domain.CategorySlice{
			Name:   name,
			Amount: sums[name],
			Color:  palette[i%len(palette)],
		}
	}
	return slices
}

// MonthlySeries builds the trailing monthsBack calendar months ending at
// now's month, inclusive. Months with no records are emitted with zero sums
// rather than skipped.
func MonthlySeries(income, expenses []Txn, monthsBack int, now time.Time) []domain.MonthPoint {
	points := make([]domain.MonthPoint, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		p := InMonth(start.Year(), start.Month(), now.Location())
		points = append(points, domain.MonthPoint{
			Year:    start.Year(),
			Month:   start.Month(),
			Label:   start.Format("Jan"),
			Income:  Sum(income, p),
			Expense: Sum(expenses, p),
		})
	}
	return points
}

// CumulativeBalance computes the running balance over a monthly series,
// starting from zero before the first period. Recomputing from the same
// series always yields the same result.
func CumulativeBalance(series []domain.MonthPoint) []domain.BalancePoint {
	out := make([]domain.BalancePoint, len(series))
	balance := decimal.Zero
	for i, p := range series {
		profit := p.Income.Sub(p.Expense)
		balance = balance.Add(profit)
		out[i] = domain.BalancePoint{MonthPoint: p, Profit: profit, Balance: balance}
	}
	return out
}

// ProfitMargin returns (income - expenses) / income as a percentage, or zero
// when there is no income to divide by.
func ProfitMargin(income, expenses decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100))
}

// Totals computes the full set of dashboard statistics from the two record
// snapshots. Zero records of either type produce all-zero stats.
func Totals(income, expenses []Txn, now time.Time) domain.DashboardStats {
	today := Today(now)
	week := TrailingWeek(now)
	month := MonthToDate(now)
	all := Lifetime()

	totalIncome := Sum(income, all)
	totalExpenses := Sum(expenses, all)

	return domain.DashboardStats{
		TodayIncome:     Sum(income, today),
		TodayExpenses:   Sum(expenses, today),
		WeeklyIncome:    Sum(income, week),
		WeeklyExpenses:  Sum(expenses, week),
		MonthlyIncome:   Sum(income, month),
		MonthlyExpenses: Sum(expenses, month),
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		CurrentBalance:  totalIncome.Sub(totalExpenses),
	}
}
