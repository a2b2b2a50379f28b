package dto

import (
	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the dashboard statistics payload.
type DashboardStatsResponse struct {
	TodayIncome     decimal.Decimal `json:"todayIncome"`
	TodayExpenses   decimal.Decimal `json:"todayExpenses"`
	WeeklyIncome    decimal.Decimal `json:"weeklyIncome"`
	WeeklyExpenses  decimal.Decimal `json:"weeklyExpenses"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	ProfitMargin    decimal.Decimal `json:"profitMargin"`
}

// CategorySliceResponse is one wedge of the breakdown chart payload.
type CategorySliceResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

// MonthPointResponse is one period of the monthly series payload.
type MonthPointResponse struct {
	Label   string          `json:"label"`
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
	Balance decimal.Decimal `json:"balance"`
}

// SendMonthlyReportRequest selects the month to email a summary for.
type SendMonthlyReportRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

// ToCategorySliceResponses converts breakdown slices to the API shape.
func ToCategorySliceResponses(slices []domain.CategorySlice) []CategorySliceResponse {
	out := make([]CategorySliceResponse, len(slices))
	for i, s := range slices {
		out[i] = CategorySliceResponse{Name: s.Name, Amount: s.Amount, Color: s.Color}
	}
	return out
}

// ToMonthPointResponses converts a cumulative series to the API shape.
func ToMonthPointResponses(points []domain.BalancePoint) []MonthPointResponse {
	out := make([]MonthPointResponse, len(points))
	for i, p := range points {
		out[i] = MonthPointResponse{
			Label:   p.Label,
			Year:    p.Year,
			Month:   int(p.Month),
			Income:  p.Income,
			Expense: p.Expense,
			Profit:  p.Profit,
			Balance: p.Balance,
		}
	}
	return out
}
