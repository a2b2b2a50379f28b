package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/core/stats"
	"github.com/nunsahui/cafeledger/internal/pdf"
)

type reportingService struct {
	BaseService
	incomeRepo    portsrepo.IncomeRepositoryFacade
	expenseRepo   portsrepo.ExpenseRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
	settingsRepo  portsrepo.SettingsRepositoryFacade
	audit         portssvc.AuditSvcFacade
	dispatcher    portssvc.NotificationDispatcher
}

// NewReportingService creates the dashboard/report service.
func NewReportingService(
	incomeRepo portsrepo.IncomeRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	audit portssvc.AuditSvcFacade,
	dispatcher portssvc.NotificationDispatcher,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		incomeRepo:    incomeRepo,
		expenseRepo:   expenseRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		settingsRepo:  settingsRepo,
		audit:         audit,
		dispatcher:    dispatcher,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// snapshot is one consistent read of both record sets. Each computation
// fetches a fresh snapshot rather than caching across requests.
type snapshot struct {
	income   []domain.IncomeRecord
	expenses []domain.ExpenseRecord
}

func (s *reportingService) fetchSnapshot(ctx context.Context) (*snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.incomeRepo.ListIncome(gctx)
		if err != nil {
			return fmt.Errorf("failed to load income records: %w", err)
		}
		snap.income = records
		return nil
	})
	g.Go(func() error {
		records, err := s.expenseRepo.ListExpenses(gctx)
		if err != nil {
			return fmt.Errorf("failed to load expense records: %w", err)
		}
		snap.expenses = records
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *reportingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	totals := stats.Totals(stats.FromIncome(snap.income), stats.FromExpenses(snap.expenses), time.Now())
	return &totals, nil
}

func (s *reportingService) MonthlySeries(ctx context.Context, monthsBack int) ([]domain.BalancePoint, error) {
	if monthsBack <= 0 {
		monthsBack = 6
	}
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	series := stats.MonthlySeries(stats.FromIncome(snap.income), stats.FromExpenses(snap.expenses), monthsBack, time.Now())
	return stats.CumulativeBalance(series), nil
}

func (s *reportingService) CategoryBreakdown(ctx context.Context, categoryType domain.CategoryType) ([]domain.CategorySlice, error) {
	switch categoryType {
	case domain.CategoryTypeIncome:
		records, err := s.incomeRepo.ListIncome(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load income records: %w", err)
		}
		return stats.CategoryBreakdown(stats.FromIncome(records)), nil
	case domain.CategoryTypeExpense:
		records, err := s.expenseRepo.ListExpenses(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load expense records: %w", err)
		}
		return stats.CategoryBreakdown(stats.FromExpenses(records)), nil
	default:
		return nil, fmt.Errorf("unknown category type %q", categoryType)
	}
}

func (s *reportingService) ReceiptDocument(ctx context.Context, receiptNumber string) (*portssvc.Document, error) {
	record, err := s.incomeRepo.FindIncomeByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to find receipt %s: %w", receiptNumber, err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// The record stores the recorder's user ID; the printed receipt shows
	// their email. A removed account falls back to the generic label.
	recordedBy := "Unknown"
	recorder, err := s.userRepo.FindUserByID(ctx, record.RecordedBy)
	switch {
	case err == nil:
		recordedBy = recorder.Email
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to load recorder for receipt: %w", err)
	}

	content, err := pdf.Receipt(*record, recordedBy, *settings)
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return &portssvc.Document{
		Filename: pdf.ReceiptFilename(record.ReceiptNumber),
		Content:  content,
	}, nil
}

func (s *reportingService) FinancialReportDocument(ctx context.Context, from, to time.Time) (*portssvc.Document, error) {
	// to is inclusive at day granularity; the repository range is half-open.
	boundary := to.AddDate(0, 0, 1)

	var (
		income   []domain.IncomeRecord
		expenses []domain.ExpenseRecord
		settings *domain.CafeSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = s.incomeRepo.ListIncomeBetween(gctx, from, boundary)
		if err != nil {
			return fmt.Errorf("failed to load income records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.ListExpensesBetween(gctx, from, boundary)
		if err != nil {
			return fmt.Errorf("failed to load expense records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		settings, err = s.settingsRepo.GetSettings(gctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	content, err := pdf.FinancialReport(income, expenses, *settings, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to render financial report: %w", err)
	}
	return &portssvc.Document{
		Filename: pdf.FinancialReportFilename(from, to),
		Content:  content,
	}, nil
}

func (s *reportingService) SalaryReportDocument(ctx context.Context) (*portssvc.Document, error) {
	now := time.Now()
	rows, err := s.SalaryRows(ctx, now)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	content, err := pdf.SalaryReport(rows, *settings, now.Month(), now.Year(), now)
	if err != nil {
		return nil, fmt.Errorf("failed to render salary report: %w", err)
	}
	return &portssvc.Document{
		Filename: pdf.SalaryReportFilename(now.Month(), now.Year()),
		Content:  content,
	}, nil
}

func (s *reportingService) InventoryReportDocument(ctx context.Context) (*portssvc.Document, error) {
	now := time.Now()

	var (
		items    []domain.InventoryItem
		txns     []domain.InventoryTransaction
		settings *domain.CafeSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.inventoryRepo.ListItems(gctx)
		if err != nil {
			return fmt.Errorf("failed to load inventory items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		txns, err = s.inventoryRepo.ListTransactions(gctx, "")
		if err != nil {
			return fmt.Errorf("failed to load inventory transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		settings, err = s.settingsRepo.GetSettings(gctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	content, err := pdf.InventoryReport(items, txns, *settings, now)
	if err != nil {
		return nil, fmt.Errorf("failed to render inventory report: %w", err)
	}
	return &portssvc.Document{
		Filename: pdf.InventoryReportFilename(now),
		Content:  content,
	}, nil
}

func (s *reportingService) SalaryRows(ctx context.Context, now time.Time) ([]domain.SalaryRow, error) {
	var (
		users    []domain.User
		income   []domain.IncomeRecord
		settings *domain.CafeSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.userRepo.ListUsers(gctx)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		income, err = s.incomeRepo.ListIncome(gctx)
		if err != nil {
			return fmt.Errorf("failed to load income records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		settings, err = s.settingsRepo.GetSettings(gctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inMonth := stats.InMonth(now.Year(), now.Month(), now.Location())
	byRecorder := map[string]decimal.Decimal{}
	for _, r := range income {
		if inMonth(r.CreatedAt) {
			byRecorder[r.RecordedBy] = byRecorder[r.RecordedBy].Add(r.Amount)
		}
	}

	pct := settings.SalaryPercentage.Div(hundred)
	rows := make([]domain.SalaryRow, 0, len(users))
	for _, u := range users {
		monthly := byRecorder[u.UserID]
		rows = append(rows, domain.SalaryRow{
			UserID:          u.UserID,
			FullName:        u.DisplayName(),
			Email:           u.Email,
			Role:            u.Role,
			MonthlyIncome:   monthly,
			EstimatedSalary: monthly.Mul(pct),
		})
	}
	return rows, nil
}

func (s *reportingService) SendMonthlySummary(ctx context.Context, month time.Month, year int, userEmail string) (*domain.MonthlySummary, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.ReportRecipientEmail == "" {
		return nil, fmt.Errorf("no report recipient email configured")
	}

	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	income := stats.FromIncome(snap.income)
	expenses := stats.FromExpenses(snap.expenses)
	inMonth := stats.InMonth(year, month, time.Local)

	totalIncome := stats.Sum(income, inMonth)
	totalExpenses := stats.Sum(expenses, inMonth)
	summary := domain.MonthlySummary{
		Month:          month,
		Year:           year,
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		NetBalance:     totalIncome.Sub(totalExpenses),
		IncomeCount:    stats.Count(income, inMonth),
		ExpenseCount:   stats.Count(expenses, inMonth),
		RecipientEmail: settings.ReportRecipientEmail,
	}

	if err := s.dispatcher.SendMonthlySummary(ctx, summary, settings.CafeName); err != nil {
		return nil, fmt.Errorf("failed to send monthly summary: %w", err)
	}

	if err := s.audit.Append(ctx, domain.AuditReportEmailed, userEmail, map[string]any{
		"month":     month.String(),
		"year":      year,
		"recipient": summary.RecipientEmail,
	}); err != nil {
		s.LogWarn(ctx, "audit append failed", "action", string(domain.AuditReportEmailed), "error", err.Error())
	}

	return &summary, nil
}
