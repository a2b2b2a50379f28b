package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/dto"
	"github.com/nunsahui/cafeledger/internal/utils"
)

// receiptRetries bounds how often a receipt number collision is retried
// before the error is surfaced.
const receiptRetries = 3

type financeService struct {
	BaseService
	incomeRepo   portsrepo.IncomeRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	audit        portssvc.AuditSvcFacade
}

// NewFinanceService creates the income/expense recording service.
func NewFinanceService(
	incomeRepo portsrepo.IncomeRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	audit portssvc.AuditSvcFacade,
) portssvc.FinanceSvcFacade {
	return &financeService{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		audit:        audit,
	}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) resolveCategory(ctx context.Context, categoryType domain.CategoryType, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryType, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown %s category %s", apperrors.ErrValidation, categoryType, categoryID)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}

func (s *financeService) RecordIncome(ctx context.Context, req dto.CreateIncomeRequest, actor domain.User) (*domain.IncomeRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	category, err := s.resolveCategory(ctx, domain.CategoryTypeIncome, req.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := domain.IncomeRecord{
		IncomeID:     uuid.NewString(),
		Amount:       req.Amount,
		CategoryID:   category.CategoryID,
		CategoryName: category.Name,
		Description:  req.Description,
		RecordedBy:   actor.UserID,
		CreatedAt:    now,
	}

	// The unique constraint on receipt_number is the enforcement point; a
	// collision surfaces as ErrDuplicate and gets a fresh number.
	for attempt := 0; attempt < receiptRetries; attempt++ {
		record.ReceiptNumber, err = utils.GenerateReceiptNumber(now)
		if err != nil {
			return nil, err
		}
		err = s.incomeRepo.SaveIncome(ctx, record)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("failed to save income record: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save income record: %w", err)
	}

	s.appendAudit(ctx, domain.AuditIncomeAdded, actor.Email, map[string]any{
		"incomeID":      record.IncomeID,
		"amount":        record.Amount.String(),
		"category":      record.CategoryName,
		"receiptNumber": record.ReceiptNumber,
	})

	return &record, nil
}

func (s *financeService) RecordExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.User) (*domain.ExpenseRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	category, err := s.resolveCategory(ctx, domain.CategoryTypeExpense, req.CategoryID)
	if err != nil {
		return nil, err
	}

	record := domain.ExpenseRecord{
		ExpenseID:     uuid.NewString(),
		Amount:        req.Amount,
		CategoryID:    category.CategoryID,
		CategoryName:  category.Name,
		Description:   req.Description,
		AttachmentURL: req.AttachmentURL,
		RecordedBy:    actor.UserID,
		CreatedAt:     time.Now(),
	}

	if err := s.expenseRepo.SaveExpense(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save expense record: %w", err)
	}

	s.appendAudit(ctx, domain.AuditExpenseAdded, actor.Email, map[string]any{
		"expenseID": record.ExpenseID,
		"amount":    record.Amount.String(),
		"category":  record.CategoryName,
	})

	return &record, nil
}

// appendAudit records the action after the financial write has committed.
// Audit failures are logged and swallowed; they never undo the record.
func (s *financeService) appendAudit(ctx context.Context, action domain.AuditActionType, userEmail string, details map[string]any) {
	if err := s.audit.Append(ctx, action, userEmail, details); err != nil {
		s.LogWarn(ctx, "audit append failed", "action", string(action), "error", err.Error())
	}
}

func (s *financeService) ListIncome(ctx context.Context) ([]domain.IncomeRecord, error) {
	records, err := s.incomeRepo.ListIncome(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list income records: %w", err)
	}
	return records, nil
}

func (s *financeService) ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error) {
	records, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense records: %w", err)
	}
	return records, nil
}

func (s *financeService) ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s categories: %w", categoryType, err)
	}
	return categories, nil
}

func (s *financeService) CreateCategory(ctx context.Context, categoryType domain.CategoryType, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Type:       categoryType,
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create %s category: %w", categoryType, err)
	}
	s.LogInfo(ctx, "category created", "type", string(categoryType), "name", category.Name, "by", userID)
	return &category, nil
}
