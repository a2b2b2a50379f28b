package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats bundles the rolling totals shown on the dashboard.
type DashboardStats struct {
	TodayIncome     decimal.Decimal `json:"todayIncome"`
	TodayExpenses   decimal.Decimal `json:"todayExpenses"`
	WeeklyIncome    decimal.Decimal `json:"weeklyIncome"`
	WeeklyExpenses  decimal.Decimal `json:"weeklyExpenses"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
}

// CategorySlice is one wedge of a category breakdown chart.
type CategorySlice struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

// MonthPoint is one period of the monthly income/expense series.
type MonthPoint struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Label   string          `json:"label"` // short month name, e.g. "Jan"
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// BalancePoint extends a MonthPoint with the running balance up to and
// including that period.
type BalancePoint struct {
	MonthPoint
	Profit  decimal.Decimal `json:"profit"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlySummary is the computed payload handed to the notification
// dispatcher for the end-of-month email.
type MonthlySummary struct {
	Month          time.Month      `json:"month"`
	Year           int             `json:"year"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetBalance     decimal.Decimal `json:"netBalance"`
	IncomeCount    int             `json:"incomeCount"`
	ExpenseCount   int             `json:"expenseCount"`
	RecipientEmail string          `json:"recipientEmail"`
}

// SalaryRow is one staff member's line in the salary report.
type SalaryRow struct {
	UserID          string          `json:"userID"`
	FullName        string          `json:"fullName"`
	Email           string          `json:"email"`
	Role            Role            `json:"role"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	EstimatedSalary decimal.Decimal `json:"estimatedSalary"`
}
