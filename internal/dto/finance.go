package dto

import (
	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest is the payload for recording a new income transaction.
type CreateIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CategoryID  string          `json:"categoryID" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// CreateExpenseRequest is the payload for recording a new expense transaction.
type CreateExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CategoryID    string          `json:"categoryID" binding:"required"`
	Description   string          `json:"description" binding:"max=500"`
	AttachmentURL string          `json:"attachmentURL" binding:"omitempty,url"`
}

// CreateCategoryRequest is the payload for adding a category to a namespace.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// IncomeResponse is the API representation of an income record.
type IncomeResponse struct {
	IncomeID      string          `json:"incomeID"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryID"`
	CategoryName  string          `json:"categoryName"`
	Description   string          `json:"description,omitempty"`
	ReceiptNumber string          `json:"receiptNumber"`
	RecordedBy    string          `json:"recordedBy"`
	CreatedAt     string          `json:"createdAt"`
}

// ExpenseResponse is the API representation of an expense record.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryID"`
	CategoryName  string          `json:"categoryName"`
	Description   string          `json:"description,omitempty"`
	AttachmentURL string          `json:"attachmentURL,omitempty"`
	RecordedBy    string          `json:"recordedBy"`
	CreatedAt     string          `json:"createdAt"`
}

// ToIncomeResponse converts a domain income record to its API shape.
func ToIncomeResponse(r domain.IncomeRecord) IncomeResponse {
	return IncomeResponse{
		IncomeID:      r.IncomeID,
		Amount:        r.Amount,
		CategoryID:    r.CategoryID,
		CategoryName:  r.CategoryName,
		Description:   r.Description,
		ReceiptNumber: r.ReceiptNumber,
		RecordedBy:    r.RecordedBy,
		CreatedAt:     r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToIncomeResponses converts a slice of domain income records.
func ToIncomeResponses(records []domain.IncomeRecord) []IncomeResponse {
	out := make([]IncomeResponse, len(records))
	for i, r := range records {
		out[i] = ToIncomeResponse(r)
	}
	return out
}

// ToExpenseResponse converts a domain expense record to its API shape.
func ToExpenseResponse(r domain.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     r.ExpenseID,
		Amount:        r.Amount,
		CategoryID:    r.CategoryID,
		CategoryName:  r.CategoryName,
		Description:   r.Description,
		AttachmentURL: r.AttachmentURL,
		RecordedBy:    r.RecordedBy,
		CreatedAt:     r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToExpenseResponses converts a slice of domain expense records.
func ToExpenseResponses(records []domain.ExpenseRecord) []ExpenseResponse {
	out := make([]ExpenseResponse, len(records))
	for i, r := range records {
		out[i] = ToExpenseResponse(r)
	}
	return out
}
