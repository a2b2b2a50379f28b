package pdf

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// SalaryReport renders the per-staff salary estimate for one calendar month.
func SalaryReport(rows []domain.SalaryRow, settings domain.CafeSettings, month time.Month, year int, generatedAt time.Time) ([]byte, error) {
	doc, tr := newDoc(generatedAt)
	pageWidth, _ := doc.GetPageSize()

	headerBand(doc, tr, settings, "MONTHLY SALARY REPORT", 40)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, generatedAt.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 11)
	doc.SetXY(0, 48)
	period := fmt.Sprintf("Period: %s - %s", monthStart.Format("02 Jan 2006"), monthEnd.Format("02 Jan 2006"))
	doc.CellFormat(pageWidth, 6, period, "", 1, "C", false, 0, "")
	doc.SetXY(0, 56)
	pct := settings.SalaryPercentage.String()
	doc.CellFormat(pageWidth, 6, fmt.Sprintf("Salary Percentage: %s%% of income generated", pct), "", 1, "C", false, 0, "")

	totalIncome := decimal.Zero
	totalSalaries := decimal.Zero
	for _, row := range rows {
		totalIncome = totalIncome.Add(row.MonthlyIncome)
		totalSalaries = totalSalaries.Add(row.EstimatedSalary)
	}

	const summaryY, cardWidth, cardHeight = 68.0, 55.0, 25.0
	card(doc, 25, summaryY, cardWidth, cardHeight, "Total Monthly Income", money(totalIncome, 0), greenBg, greenFg)
	card(doc, 85, summaryY, cardWidth, cardHeight, "Total Staff", strconv.Itoa(len(rows)), blueBg, blueFg)
	card(doc, 145, summaryY, cardWidth, cardHeight, "Total Salaries", money(totalSalaries, 0), yellowBg, yellowFg)

	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(20, 102)
	doc.CellFormat(80, 8, "Staff Salary Details", "", 1, "L", false, 0, "")
	doc.SetLeftMargin(20)

	cols := []tableColumn{
		{header: "Name", width: 38, align: "L"},
		{header: "Email", width: 48, align: "L"},
		{header: "Role", width: 28, align: "L"},
		{header: "Monthly Income", width: 28, align: "R"},
		{header: fmt.Sprintf("Salary (%s%%)", pct), width: 28, align: "R"},
	}
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{
			row.FullName,
			row.Email,
			string(row.Role),
			money(row.MonthlyIncome, 0),
			money(row.EstimatedSalary, 2),
		})
	}
	afterTable := stripedTable(doc, tr, 112, cols, tableRows, headerGreen, "No staff records")

	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(20, afterTable+10)
	doc.CellFormat(50, 6, "TOTAL PAYROLL:", "", 0, "L", false, 0, "")
	doc.SetTextColor(greenFg.r, greenFg.g, greenFg.b)
	doc.SetXY(pageWidth-80, afterTable+10)
	doc.CellFormat(60, 6, money(totalSalaries, 2), "", 0, "R", false, 0, "")

	footerLine(doc, tr, settings)
	return render(doc)
}
