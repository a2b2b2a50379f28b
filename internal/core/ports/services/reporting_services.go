package services

import (
	"context"
	"time"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// Document is a generated PDF with its deterministic download filename.
type Document struct {
	Filename string
	Content  []byte
}

// ReportingSvcFacade computes dashboard figures and renders report documents.
type ReportingSvcFacade interface {
	// DashboardStats computes the rolling totals from a fresh snapshot.
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// MonthlySeries returns the trailing monthsBack calendar months with the
	// running balance included.
	MonthlySeries(ctx context.Context, monthsBack int) ([]domain.BalancePoint, error)

	// CategoryBreakdown aggregates amounts by category for one record type.
	CategoryBreakdown(ctx context.Context, categoryType domain.CategoryType) ([]domain.CategorySlice, error)

	// ReceiptDocument renders the payment receipt for an income record.
	ReceiptDocument(ctx context.Context, receiptNumber string) (*Document, error)

	// FinancialReportDocument renders the financial report for [from, to].
	FinancialReportDocument(ctx context.Context, from, to time.Time) (*Document, error)

	// SalaryReportDocument renders the current month's salary report.
	SalaryReportDocument(ctx context.Context) (*Document, error)

	// InventoryReportDocument renders the stock report.
	InventoryReportDocument(ctx context.Context) (*Document, error)

	// SalaryRows computes per-staff monthly income and estimated salary.
	SalaryRows(ctx context.Context, now time.Time) ([]domain.SalaryRow, error)

	// SendMonthlySummary computes the summary for the given month and hands
	// it to the notification dispatcher. The underlying records are read,
	// never mutated.
	SendMonthlySummary(ctx context.Context, month time.Month, year int, userEmail string) (*domain.MonthlySummary, error)
}

// NotificationDispatcher is the outbound email side-channel. Implementations
// deliver a computed monthly summary to the configured recipient.
type NotificationDispatcher interface {
	SendMonthlySummary(ctx context.Context, summary domain.MonthlySummary, cafeName string) error
}
