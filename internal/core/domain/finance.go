package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryType distinguishes the two category namespaces. Income and expense
// categories live in separate tables and never share identifiers.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is a named grouping for income or expense records.
type Category struct {
	CategoryID string       `json:"categoryID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
}

// IncomeRecord is a single recorded income transaction. Records are immutable
// once created; there is no update or delete path.
type IncomeRecord struct {
	IncomeID      string          `json:"incomeID"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryID"`
	CategoryName  string          `json:"categoryName"` // joined for display, "Unknown" on lookup miss
	Description   string          `json:"description,omitempty"`
	ReceiptNumber string          `json:"receiptNumber"`
	RecordedBy    string          `json:"recordedBy"` // UserID reference
	CreatedAt     time.Time       `json:"createdAt"`
}

// ExpenseRecord is a single recorded expense transaction. Immutable.
type ExpenseRecord struct {
	ExpenseID     string          `json:"expenseID"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryID"`
	CategoryName  string          `json:"categoryName"`
	Description   string          `json:"description,omitempty"`
	AttachmentURL string          `json:"attachmentURL,omitempty"`
	RecordedBy    string          `json:"recordedBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}
