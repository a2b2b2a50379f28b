package pdf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// InventoryReport renders current stock levels with a profit summary and,
// when movements exist, a second page of purchase/sale history.
func InventoryReport(items []domain.InventoryItem, transactions []domain.InventoryTransaction, settings domain.CafeSettings, generatedAt time.Time) ([]byte, error) {
	doc, tr := newDoc(generatedAt)
	pageWidth, _ := doc.GetPageSize()

	headerBand(doc, tr, settings, "INVENTORY REPORT", 40)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(0, 48)
	doc.CellFormat(pageWidth, 6, "Generated: "+generatedAt.Format("02 Jan 2006, 03:04 PM"), "", 1, "C", false, 0, "")

	var lowStock, outOfStock int
	stockValue := decimal.Zero
	for _, item := range items {
		switch item.Status() {
		case domain.StockStatusLow:
			lowStock++
		case domain.StockStatusOut:
			outOfStock++
		}
		stockValue = stockValue.Add(item.SellPrice.Mul(decimal.NewFromInt(item.CurrentStock)))
	}

	const summaryY, cardW, cardH = 56.0, 42.0, 22.0
	card(doc, 14, summaryY, cardW, cardH, "Total Items", strconv.Itoa(len(items)), greenBg, greenFg)
	card(doc, 60, summaryY, cardW, cardH, "Low Stock", strconv.Itoa(lowStock), yellowBg, yellowFg)
	card(doc, 106, summaryY, cardW, cardH, "Out of Stock", strconv.Itoa(outOfStock), redBg, redFg)
	card(doc, 152, summaryY, cardW, cardH, "Stock Value", money(stockValue, 0), blueBg, blueFg)

	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(14, 86)
	doc.CellFormat(80, 8, "Stock Levels", "", 1, "L", false, 0, "")
	doc.SetLeftMargin(14)

	cols := []tableColumn{
		{header: "Item", width: 28, align: "L"},
		{header: "Category", width: 22, align: "L"},
		{header: "Stock", width: 20, align: "R"},
		{header: "Bought", width: 14, align: "R"},
		{header: "Sold", width: 12, align: "R"},
		{header: "Cost", width: 20, align: "R"},
		{header: "Price", width: 20, align: "R"},
		{header: "Margin", width: 14, align: "R"},
		{header: "Profit", width: 20, align: "R"},
		{header: "Status", width: 12, align: "L"},
	}

	hundred := decimal.NewFromInt(100)
	totalProfit := decimal.Zero
	totalRevenue := decimal.Zero
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		sold := decimal.NewFromInt(item.TotalSold)
		profit := item.SellPrice.Sub(item.CostPrice).Mul(sold)
		totalProfit = totalProfit.Add(profit)
		totalRevenue = totalRevenue.Add(item.SellPrice.Mul(sold))

		margin := "0%"
		if item.SellPrice.IsPositive() {
			m := item.SellPrice.Sub(item.CostPrice).Div(item.SellPrice).Mul(hundred)
			margin = m.StringFixed(1) + "%"
		}
		rows = append(rows, []string{
			item.Name,
			item.Category,
			fmt.Sprintf("%d %s", item.CurrentStock, item.Unit),
			strconv.FormatInt(item.TotalPurchased, 10),
			strconv.FormatInt(item.TotalSold, 10),
			money(item.CostPrice, 0),
			money(item.SellPrice, 0),
			margin,
			money(profit, 0),
			string(item.Status()),
		})
	}
	afterTable := stripedTable(doc, tr, 95, cols, rows, headerGreen, "No items")

	profitY := afterTable + 10
	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(14, profitY)
	doc.CellFormat(60, 6, "Profit Summary", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(14, profitY+8)
	doc.CellFormat(100, 5, "Total Revenue: "+money(totalRevenue, 0), "", 1, "L", false, 0, "")
	doc.SetXY(14, profitY+15)
	doc.CellFormat(100, 5, "Total Cost of Goods Sold: "+money(totalRevenue.Sub(totalProfit), 0), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(greenFg.r, greenFg.g, greenFg.b)
	doc.SetXY(14, profitY+22)
	doc.CellFormat(100, 5, "Gross Profit: "+money(totalProfit, 0), "", 1, "L", false, 0, "")

	if len(transactions) > 0 {
		doc.AddPage()
		doc.SetFillColor(headerGreen.r, headerGreen.g, headerGreen.b)
		doc.Rect(0, 0, pageWidth, 25, "F")
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 14)
		doc.SetXY(0, 9)
		doc.CellFormat(pageWidth, 10, "Purchase & Sale History", "", 1, "C", false, 0, "")

		txCols := []tableColumn{
			{header: "Date", width: 34, align: "L"},
			{header: "Item", width: 48, align: "L"},
			{header: "Type", width: 24, align: "L"},
			{header: "Qty", width: 16, align: "R"},
			{header: "Note", width: 60, align: "L"},
		}
		txRows := make([][]string, 0, len(transactions))
		for _, tx := range transactions {
			txRows = append(txRows, []string{
				tx.CreatedAt.Format("02/01/2006 15:04"),
				tx.ItemName,
				titleCase(string(tx.Type)),
				strconv.FormatInt(tx.Quantity, 10),
				orDash(tx.Note),
			})
		}
		stripedTable(doc, tr, 35, txCols, txRows, headerGreen, "No movements")
	}

	footerLine(doc, tr, settings)
	return render(doc)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
