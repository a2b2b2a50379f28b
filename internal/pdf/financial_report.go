package pdf

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// FinancialReport renders the income/expense report for the inclusive period
// [from, to].
func FinancialReport(income []domain.IncomeRecord, expenses []domain.ExpenseRecord, settings domain.CafeSettings, from, to time.Time) ([]byte, error) {
	doc, tr := newDoc(to)
	pageWidth, _ := doc.GetPageSize()

	headerBand(doc, tr, settings, "FINANCIAL REPORT", 40)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 11)
	doc.SetXY(0, 48)
	period := fmt.Sprintf("Period: %s - %s", from.Format("02 Jan 2006"), to.Format("02 Jan 2006"))
	doc.CellFormat(pageWidth, 6, period, "", 1, "C", false, 0, "")

	totalIncome := decimal.Zero
	for _, r := range income {
		totalIncome = totalIncome.Add(r.Amount)
	}
	totalExpenses := decimal.Zero
	for _, r := range expenses {
		totalExpenses = totalExpenses.Add(r.Amount)
	}
	netBalance := totalIncome.Sub(totalExpenses)

	balanceBg, balanceFg := greenBg, greenFg
	if netBalance.IsNegative() {
		balanceBg, balanceFg = redBg, redFg
	}

	const summaryY, cardWidth, cardHeight = 62.0, 55.0, 25.0
	card(doc, 20, summaryY, cardWidth, cardHeight, "Total Income", money(totalIncome, 0), greenBg, greenFg)
	card(doc, 80, summaryY, cardWidth, cardHeight, "Total Expenses", money(totalExpenses, 0), redBg, redFg)
	card(doc, 140, summaryY, cardWidth, cardHeight, "Net Balance", money(netBalance.Abs(), 0), balanceBg, balanceFg)

	cols := []tableColumn{
		{header: "Date", width: 28, align: "L"},
		{header: "Category", width: 40, align: "L"},
		{header: "Description", width: 67, align: "L"},
		{header: "Amount", width: 35, align: "R"},
	}

	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(20, 100)
	doc.CellFormat(80, 8, "Income Records", "", 1, "L", false, 0, "")
	doc.SetLeftMargin(20)

	incomeRows := make([][]string, 0, len(income))
	for _, r := range income {
		incomeRows = append(incomeRows, []string{
			r.CreatedAt.Format("02/01/2006"),
			r.CategoryName,
			orDash(r.Description),
			money(r.Amount, 0),
		})
	}
	afterIncome := stripedTable(doc, tr, 110, cols, incomeRows, headerGreen, "No income records")

	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(20, afterIncome+10)
	doc.CellFormat(80, 8, "Expense Records", "", 1, "L", false, 0, "")

	expenseRows := make([][]string, 0, len(expenses))
	for _, r := range expenses {
		expenseRows = append(expenseRows, []string{
			r.CreatedAt.Format("02/01/2006"),
			r.CategoryName,
			orDash(r.Description),
			money(r.Amount, 0),
		})
	}
	stripedTable(doc, tr, afterIncome+20, cols, expenseRows, redFg, "No expense records")

	footerLine(doc, tr, settings)
	return render(doc)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
