// Package pdf renders the receipt and report documents. All documents share
// the same visual language: a dark green header band, rounded summary cards
// and striped tables. Rendering is deterministic for a given input because
// the creation date embedded in the file comes from the record itself, never
// from the wall clock.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/nunsahui/cafeledger/internal/utils"
)

type rgb struct{ r, g, b int }

var (
	headerGreen = rgb{5, 46, 22}
	greenBg     = rgb{220, 252, 231}
	greenFg     = rgb{22, 101, 52}
	redBg       = rgb{254, 226, 226}
	redFg       = rgb{153, 27, 27}
	blueBg      = rgb{219, 234, 254}
	blueFg      = rgb{29, 78, 216}
	yellowBg    = rgb{254, 249, 195}
	yellowFg    = rgb{161, 98, 7}
	grayLine    = rgb{200, 200, 200}
	grayText    = rgb{100, 100, 100}
)

// money renders an amount for PDF output. The built-in PDF fonts are cp1252
// only and cannot encode the naira sign, so documents carry the ISO code
// instead of the symbol used elsewhere.
func money(amount decimal.Decimal, decimals int32) string {
	return strings.Replace(utils.FormatAmount(amount, decimals), utils.CurrencySymbol, "NGN ", 1)
}

// ReceiptFilename is the download name for a receipt document.
func ReceiptFilename(receiptNumber string) string {
	return fmt.Sprintf("Receipt-%s.pdf", receiptNumber)
}

// FinancialReportFilename is the download name for a financial report.
func FinancialReportFilename(from, to time.Time) string {
	return fmt.Sprintf("Financial-Report-%s-%s.pdf", from.Format("20060102"), to.Format("20060102"))
}

// SalaryReportFilename is the download name for a salary report.
func SalaryReportFilename(month time.Month, year int) string {
	return fmt.Sprintf("Salary-Report-%s-%d.pdf", month.String(), year)
}

// InventoryReportFilename is the download name for an inventory report.
func InventoryReportFilename(generatedAt time.Time) string {
	return fmt.Sprintf("Inventory-Report-%s.pdf", generatedAt.Format("20060102-1504"))
}

// newDoc creates an A4 portrait document. The returned translator maps UTF-8
// input to the cp1252 encoding the built-in fonts use; every user-supplied
// string must pass through it before being drawn.
func newDoc(createdAt time.Time) (*fpdf.Fpdf, func(string) string) {
	doc := fpdf.New("P", "mm", "A4", "")
	// Both /CreationDate and /ModDate must be pinned; fpdf falls back to the
	// wall clock for any date left unset.
	doc.SetCreationDate(createdAt.UTC())
	doc.SetModificationDate(createdAt.UTC())
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	return doc, doc.UnicodeTranslatorFromDescriptor("")
}

// headerBand draws the dark green banner with the café name and a subtitle.
func headerBand(doc *fpdf.Fpdf, tr func(string) string, settings domain.CafeSettings, subtitle string, height float64) {
	pageWidth, _ := doc.GetPageSize()

	doc.SetFillColor(headerGreen.r, headerGreen.g, headerGreen.b)
	doc.Rect(0, 0, pageWidth, height, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 20)
	doc.SetXY(0, 10)
	doc.CellFormat(pageWidth, 10, tr(settings.CafeName), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	doc.SetXY(0, 26)
	doc.CellFormat(pageWidth, 8, subtitle, "", 1, "C", false, 0, "")
}

// card draws one rounded summary card with a small label over a bold value.
func card(doc *fpdf.Fpdf, x, y, w, h float64, label, value string, bg, fg rgb) {
	doc.SetFillColor(bg.r, bg.g, bg.b)
	doc.RoundedRect(x, y, w, h, 2, "1234", "F")

	doc.SetTextColor(fg.r, fg.g, fg.b)
	doc.SetFont("Helvetica", "", 8)
	doc.SetXY(x, y+4)
	doc.CellFormat(w, 5, label, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(x, y+h-9)
	doc.CellFormat(w, 6, value, "", 1, "C", false, 0, "")
}

// tableColumn describes one column of a striped table.
type tableColumn struct {
	header string
	width  float64
	align  string
}

// stripedTable draws a table with a colored header row and alternating row
// shading, starting at y. Cell text is translated for the cp1252 fonts. It
// returns the y position after the table.
func stripedTable(doc *fpdf.Fpdf, tr func(string) string, y float64, cols []tableColumn, rows [][]string, headBg rgb, emptyLabel string) float64 {
	const rowHeight = 7

	doc.SetY(y)
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(headBg.r, headBg.g, headBg.b)
	doc.SetTextColor(255, 255, 255)
	for _, col := range cols {
		doc.CellFormat(col.width, rowHeight, col.header, "", 0, col.align, true, 0, "")
	}
	doc.Ln(rowHeight)

	if len(rows) == 0 {
		row := make([]string, len(cols))
		row[0] = emptyLabel
		rows = [][]string{row}
	}

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	for i, row := range rows {
		fill := i%2 == 1
		doc.SetFillColor(245, 245, 245)
		for j, col := range cols {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			doc.CellFormat(col.width, rowHeight, tr(cell), "", 0, col.align, fill, 0, "")
		}
		doc.Ln(rowHeight)
	}
	return doc.GetY()
}

// footerLine draws the small gray contact line at the bottom of the page.
func footerLine(doc *fpdf.Fpdf, tr func(string) string, settings domain.CafeSettings) {
	pageWidth, pageHeight := doc.GetPageSize()
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(grayText.r, grayText.g, grayText.b)
	doc.SetXY(0, pageHeight-14)
	line := fmt.Sprintf("%s | %s | %s", settings.CafeName, settings.Address, settings.Email)
	doc.CellFormat(pageWidth, 6, tr(line), "", 1, "C", false, 0, "")
}

func render(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
