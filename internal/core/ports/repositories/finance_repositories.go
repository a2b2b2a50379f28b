package repositories

import (
	"context"
	"time"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// IncomeReader defines read operations for income records.
type IncomeReader interface {
	// ListIncome retrieves all income records, newest first, with category
	// names joined ("Unknown" on a lookup miss).
	ListIncome(ctx context.Context) ([]domain.IncomeRecord, error)

	// ListIncomeBetween retrieves income records within [from, to), newest first.
	ListIncomeBetween(ctx context.Context, from, to time.Time) ([]domain.IncomeRecord, error)

	// FindIncomeByReceiptNumber retrieves the single record a receipt number
	// traces to.
	FindIncomeByReceiptNumber(ctx context.Context, receiptNumber string) (*domain.IncomeRecord, error)
}

// IncomeWriter defines write operations for income records. Records are
// immutable: there is deliberately no update or delete operation.
type IncomeWriter interface {
	// SaveIncome persists a new income record.
	SaveIncome(ctx context.Context, record domain.IncomeRecord) error
}

// IncomeRepositoryFacade combines all income repository interfaces.
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}

// ExpenseReader defines read operations for expense records.
type ExpenseReader interface {
	ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error)
	ListExpensesBetween(ctx context.Context, from, to time.Time) ([]domain.ExpenseRecord, error)
}

// ExpenseWriter defines write operations for expense records. Immutable, so
// insert only.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, record domain.ExpenseRecord) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// CategoryRepositoryFacade manages the two category namespaces.
type CategoryRepositoryFacade interface {
	// ListCategories retrieves all categories of one namespace.
	ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)

	// FindCategoryByID retrieves a category within a namespace.
	FindCategoryByID(ctx context.Context, categoryType domain.CategoryType, categoryID string) (*domain.Category, error)

	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error
}
