package services

import (
	"context"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/nunsahui/cafeledger/internal/dto"
)

// FinanceRecorder defines the transaction recording workflow. A successful
// return guarantees a refreshed snapshot is observable: the record has been
// persisted before the call returns.
type FinanceRecorder interface {
	// RecordIncome validates, assigns a receipt number, persists the record
	// and appends a best-effort audit entry attributed to the actor.
	RecordIncome(ctx context.Context, req dto.CreateIncomeRequest, actor domain.User) (*domain.IncomeRecord, error)

	// RecordExpense validates and persists an expense record with a
	// best-effort audit entry attributed to the actor.
	RecordExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.User) (*domain.ExpenseRecord, error)
}

// FinanceReader exposes the record snapshots used by lists and aggregation.
type FinanceReader interface {
	ListIncome(ctx context.Context) ([]domain.IncomeRecord, error)
	ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error)
	ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	CreateCategory(ctx context.Context, categoryType domain.CategoryType, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
}

// FinanceSvcFacade combines the finance service interfaces.
type FinanceSvcFacade interface {
	FinanceRecorder
	FinanceReader
}
