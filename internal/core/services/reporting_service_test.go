package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/core/services"
)

// --- Mock NotificationDispatcher ---
type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) SendMonthlySummary(ctx context.Context, summary domain.MonthlySummary, cafeName string) error {
	args := m.Called(ctx, summary, cafeName)
	return args.Error(0)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockIncomeRepo    *MockIncomeRepository
	mockExpenseRepo   *MockExpenseRepository
	mockUserRepo      *MockUserRepository
	mockInventoryRepo *MockInventoryRepository
	mockSettingsRepo  *MockSettingsRepository
	mockAudit         *MockAuditService
	mockDispatcher    *MockNotificationDispatcher
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockIncomeRepo = new(MockIncomeRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockAudit = new(MockAuditService)
	suite.mockDispatcher = new(MockNotificationDispatcher)
	suite.service = services.NewReportingService(
		suite.mockIncomeRepo,
		suite.mockExpenseRepo,
		suite.mockUserRepo,
		suite.mockInventoryRepo,
		suite.mockSettingsRepo,
		suite.mockAudit,
		suite.mockDispatcher,
	)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestDashboardStats() {
	ctx := context.Background()
	now := time.Now()
	income := []domain.IncomeRecord{
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(100), CategoryName: "Drinks", CreatedAt: now},
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(50), CategoryName: "Snacks", CreatedAt: now.AddDate(-1, 0, 0)},
	}
	expenses := []domain.ExpenseRecord{
		{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(30), CategoryName: "Supplies", CreatedAt: now},
	}

	// The snapshot fetch runs on a derived context, so the exact ctx value
	// cannot be matched here.
	suite.mockIncomeRepo.On("ListIncome", mock.Anything).Return(income, nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", mock.Anything).Return(expenses, nil).Once()

	stats, err := suite.service.DashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.True(stats.TotalIncome.Equal(decimal.NewFromInt(150)), "total income %s", stats.TotalIncome)
	suite.True(stats.TotalExpenses.Equal(decimal.NewFromInt(30)))
	suite.True(stats.TodayIncome.Equal(decimal.NewFromInt(100)))
	suite.True(stats.CurrentBalance.Equal(decimal.NewFromInt(120)))
	suite.mockIncomeRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlySeries_DefaultsToSixMonths() {
	ctx := context.Background()

	suite.mockIncomeRepo.On("ListIncome", mock.Anything).Return([]domain.IncomeRecord{}, nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", mock.Anything).Return([]domain.ExpenseRecord{}, nil).Once()

	series, err := suite.service.MonthlySeries(ctx, 0)

	suite.Require().NoError(err)
	suite.Len(series, 6)
	for _, point := range series {
		suite.True(point.Income.IsZero())
		suite.True(point.Balance.IsZero())
	}
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_Income() {
	ctx := context.Background()
	income := []domain.IncomeRecord{
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(300), CategoryName: "Drinks", CreatedAt: time.Now()},
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(100), CategoryName: "Drinks", CreatedAt: time.Now()},
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(50), CategoryName: "Snacks", CreatedAt: time.Now()},
	}

	suite.mockIncomeRepo.On("ListIncome", ctx).Return(income, nil).Once()

	slices, err := suite.service.CategoryBreakdown(ctx, domain.CategoryTypeIncome)

	suite.Require().NoError(err)
	suite.Require().Len(slices, 2)
	suite.Equal("Drinks", slices[0].Name)
	suite.True(slices[0].Amount.Equal(decimal.NewFromInt(400)))
	suite.NotEmpty(slices[0].Color)
}

func (suite *ReportingServiceTestSuite) TestReceiptDocument() {
	ctx := context.Background()
	recorder := &domain.User{UserID: uuid.NewString(), Email: "cashier@cafe.test", Role: domain.RoleFinanceOfficer}
	record := &domain.IncomeRecord{
		IncomeID:      uuid.NewString(),
		Amount:        decimal.NewFromInt(2500),
		CategoryName:  "Drinks",
		ReceiptNumber: "RCP-1735689600000-ABCDE",
		RecordedBy:    recorder.UserID,
		CreatedAt:     time.Date(2025, time.June, 5, 14, 30, 0, 0, time.UTC),
	}
	settings := &domain.CafeSettings{CafeName: "NUNSA HUI Café", SalaryPercentage: decimal.NewFromInt(10)}

	suite.mockIncomeRepo.On("FindIncomeByReceiptNumber", ctx, record.ReceiptNumber).Return(record, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", ctx).Return(settings, nil).Once()
	// The receipt shows the recorder's email, not the user ID on the record.
	suite.mockUserRepo.On("FindUserByID", ctx, recorder.UserID).Return(recorder, nil).Once()

	doc, err := suite.service.ReceiptDocument(ctx, record.ReceiptNumber)

	suite.Require().NoError(err)
	suite.Require().NotNil(doc)
	suite.Equal("Receipt-RCP-1735689600000-ABCDE.pdf", doc.Filename)
	suite.True(bytes.HasPrefix(doc.Content, []byte("%PDF-")))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestReceiptDocument_RecorderAccountRemoved() {
	ctx := context.Background()
	record := &domain.IncomeRecord{
		IncomeID:      uuid.NewString(),
		Amount:        decimal.NewFromInt(900),
		CategoryName:  "Drinks",
		ReceiptNumber: "RCP-1735689600001-FGHIJ",
		RecordedBy:    uuid.NewString(),
		CreatedAt:     time.Date(2025, time.June, 6, 10, 0, 0, 0, time.UTC),
	}
	settings := &domain.CafeSettings{CafeName: "NUNSA HUI Café", SalaryPercentage: decimal.NewFromInt(10)}

	suite.mockIncomeRepo.On("FindIncomeByReceiptNumber", ctx, record.ReceiptNumber).Return(record, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", ctx).Return(settings, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, record.RecordedBy).Return(nil, apperrors.ErrNotFound).Once()

	doc, err := suite.service.ReceiptDocument(ctx, record.ReceiptNumber)

	suite.Require().NoError(err)
	suite.Require().NotNil(doc)
	suite.True(bytes.HasPrefix(doc.Content, []byte("%PDF-")))
}

func (suite *ReportingServiceTestSuite) TestSalaryRows() {
	ctx := context.Background()
	now := time.Now()
	officer := domain.User{UserID: uuid.NewString(), Email: "cashier@cafe.test", FullName: "Tunde Ojo", Role: domain.RoleFinanceOfficer}
	idle := domain.User{UserID: uuid.NewString(), Email: "quiet@cafe.test", Role: domain.RoleAdmin}
	income := []domain.IncomeRecord{
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(800), RecordedBy: officer.UserID, CreatedAt: now},
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(200), RecordedBy: officer.UserID, CreatedAt: now},
		// Outside the current month, must not count.
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(9999), RecordedBy: officer.UserID, CreatedAt: now.AddDate(0, -2, 0)},
	}
	settings := &domain.CafeSettings{SalaryPercentage: decimal.NewFromInt(10)}

	suite.mockUserRepo.On("ListUsers", mock.Anything).Return([]domain.User{officer, idle}, nil).Once()
	suite.mockIncomeRepo.On("ListIncome", mock.Anything).Return(income, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(settings, nil).Once()

	rows, err := suite.service.SalaryRows(ctx, now)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Tunde Ojo", rows[0].FullName)
	suite.True(rows[0].MonthlyIncome.Equal(decimal.NewFromInt(1000)), "monthly income %s", rows[0].MonthlyIncome)
	suite.True(rows[0].EstimatedSalary.Equal(decimal.NewFromInt(100)), "estimated salary %s", rows[0].EstimatedSalary)
	suite.Equal("No name", rows[1].FullName)
	suite.True(rows[1].MonthlyIncome.IsZero())
	suite.True(rows[1].EstimatedSalary.IsZero())
}

func (suite *ReportingServiceTestSuite) TestSendMonthlySummary_Success() {
	ctx := context.Background()
	inMarch := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	income := []domain.IncomeRecord{
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(5000), CreatedAt: inMarch},
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(2000), CreatedAt: inMarch.AddDate(0, -1, 0)},
	}
	expenses := []domain.ExpenseRecord{
		{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(1500), CreatedAt: inMarch},
	}
	settings := &domain.CafeSettings{CafeName: "NUNSA HUI Café", ReportRecipientEmail: "board@cafe.test"}

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(settings, nil).Once()
	suite.mockIncomeRepo.On("ListIncome", mock.Anything).Return(income, nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", mock.Anything).Return(expenses, nil).Once()
	suite.mockDispatcher.On("SendMonthlySummary", ctx, mock.MatchedBy(func(s domain.MonthlySummary) bool {
		return s.Month == time.March &&
			s.Year == 2025 &&
			s.TotalIncome.Equal(decimal.NewFromInt(5000)) &&
			s.TotalExpenses.Equal(decimal.NewFromInt(1500)) &&
			s.NetBalance.Equal(decimal.NewFromInt(3500)) &&
			s.IncomeCount == 1 &&
			s.ExpenseCount == 1 &&
			s.RecipientEmail == "board@cafe.test"
	}), "NUNSA HUI Café").Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.AuditReportEmailed, "admin@cafe.test", mock.Anything).Return(nil).Once()

	summary, err := suite.service.SendMonthlySummary(ctx, time.March, 2025, "admin@cafe.test")

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.NetBalance.Equal(decimal.NewFromInt(3500)))
	suite.mockDispatcher.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSendMonthlySummary_NoRecipientConfigured() {
	ctx := context.Background()
	settings := &domain.CafeSettings{CafeName: "NUNSA HUI Café"}

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(settings, nil).Once()

	summary, err := suite.service.SendMonthlySummary(ctx, time.March, 2025, "admin@cafe.test")

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.mockDispatcher.AssertNotCalled(suite.T(), "SendMonthlySummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestSendMonthlySummary_DispatcherFailure() {
	ctx := context.Background()
	settings := &domain.CafeSettings{CafeName: "NUNSA HUI Café", ReportRecipientEmail: "board@cafe.test"}

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(settings, nil).Once()
	suite.mockIncomeRepo.On("ListIncome", mock.Anything).Return([]domain.IncomeRecord{}, nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", mock.Anything).Return([]domain.ExpenseRecord{}, nil).Once()
	suite.mockDispatcher.On("SendMonthlySummary", ctx, mock.Anything, mock.Anything).Return(context.DeadlineExceeded).Once()

	summary, err := suite.service.SendMonthlySummary(ctx, time.March, 2025, "admin@cafe.test")

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.mockAudit.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
