package pdf

import (
	"fmt"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// Receipt renders the payment receipt for an income record. recordedBy is the
// recorder's display identity (their email), already resolved from the user
// ID on the record. Output is byte-identical for the same input.
func Receipt(record domain.IncomeRecord, recordedBy string, settings domain.CafeSettings) ([]byte, error) {
	doc, tr := newDoc(record.CreatedAt)
	pageWidth, _ := doc.GetPageSize()

	// Taller band than the reports: the receipt header also carries the
	// contact details.
	doc.SetFillColor(headerGreen.r, headerGreen.g, headerGreen.b)
	doc.Rect(0, 0, pageWidth, 45, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 24)
	doc.SetXY(0, 10)
	doc.CellFormat(pageWidth, 12, tr(settings.CafeName), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(0, 26)
	doc.CellFormat(pageWidth, 6, tr(settings.Address), "", 1, "C", false, 0, "")
	doc.SetXY(0, 33)
	doc.CellFormat(pageWidth, 6, tr(fmt.Sprintf("Tel: %s | Email: %s", settings.Phone, settings.Email)), "", 1, "C", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(0, 55)
	doc.CellFormat(pageWidth, 10, "PAYMENT RECEIPT", "", 1, "C", false, 0, "")

	const leftMargin = 25.0
	rightMargin := pageWidth - 25
	startY := 75.0

	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(leftMargin, startY)
	doc.CellFormat(30, 6, "Receipt No:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(70, 6, record.ReceiptNumber, "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(rightMargin-60, startY)
	doc.CellFormat(14, 6, "Date:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(46, 6, record.CreatedAt.Format("02 Jan 2006, 03:04 PM"), "", 0, "L", false, 0, "")

	doc.SetDrawColor(grayLine.r, grayLine.g, grayLine.b)
	doc.Line(leftMargin, startY+10, rightMargin, startY+10)

	// Amount box
	doc.SetFillColor(240, 253, 244)
	doc.RoundedRect(leftMargin, startY+20, pageWidth-50, 35, 3, "1234", "F")

	doc.SetTextColor(headerGreen.r, headerGreen.g, headerGreen.b)
	doc.SetFont("Helvetica", "B", 14)
	doc.SetXY(0, startY+26)
	doc.CellFormat(pageWidth, 8, "Amount Received", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 28)
	doc.SetXY(0, startY+38)
	doc.CellFormat(pageWidth, 14, money(record.Amount, 2), "", 1, "C", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 11)
	detailsY := startY + 70

	doc.SetXY(leftMargin, detailsY)
	doc.CellFormat(26, 6, "Category:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(100, 6, tr(record.CategoryName), "", 0, "L", false, 0, "")

	if record.Description != "" {
		doc.SetFont("Helvetica", "B", 11)
		doc.SetXY(leftMargin, detailsY+12)
		doc.CellFormat(30, 6, "Description:", "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(110, 6, tr(record.Description), "", 0, "L", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(leftMargin, detailsY+24)
	doc.CellFormat(32, 6, "Recorded By:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(100, 6, tr(recordedBy), "", 0, "L", false, 0, "")

	doc.SetDrawColor(grayLine.r, grayLine.g, grayLine.b)
	doc.Line(leftMargin, 250, rightMargin, 250)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(grayText.r, grayText.g, grayText.b)
	doc.SetXY(0, 256)
	doc.CellFormat(pageWidth, 6, "This is a computer-generated receipt and is valid without signature.", "", 1, "C", false, 0, "")
	doc.SetXY(0, 264)
	doc.CellFormat(pageWidth, 6, "Thank you for your patronage!", "", 1, "C", false, 0, "")

	return render(doc)
}
