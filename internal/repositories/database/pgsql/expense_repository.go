package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
)

type expenseRepository struct {
	BaseRepository
}

func newExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &expenseRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

const expenseSelect = `
	SELECT
		e.expense_id,
		e.amount,
		e.category_id,
		c.name,
		e.description,
		e.attachment_url,
		e.recorded_by,
		e.created_at
	FROM expenses e
	LEFT JOIN expense_categories c ON e.category_id = c.category_id
`

func scanExpenseRows(rows pgx.Rows) ([]domain.ExpenseRecord, error) {
	var result []domain.ExpenseRecord
	for rows.Next() {
		var rec domain.ExpenseRecord
		// category_id is ON DELETE SET NULL, so it scans through a pointer
		// like the other nullable columns.
		var categoryID, categoryName, description, attachmentURL *string

		if err := rows.Scan(
			&rec.ExpenseID,
			&rec.Amount,
			&categoryID,
			&categoryName,
			&description,
			&attachmentURL,
			&rec.RecordedBy,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}

		rec.CategoryName = domain.UnknownCategoryName
		if categoryID != nil {
			rec.CategoryID = *categoryID
		}
		if categoryName != nil {
			rec.CategoryName = *categoryName
		}
		if description != nil {
			rec.Description = *description
		}
		if attachmentURL != nil {
			rec.AttachmentURL = *attachmentURL
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	if result == nil {
		result = []domain.ExpenseRecord{}
	}
	return result, nil
}

func (r *expenseRepository) ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error) {
	rows, err := r.Pool.Query(ctx, expenseSelect+` ORDER BY e.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying expense records: %w", err)
	}
	defer rows.Close()
	return scanExpenseRows(rows)
}

func (r *expenseRepository) ListExpensesBetween(ctx context.Context, from, to time.Time) ([]domain.ExpenseRecord, error) {
	rows, err := r.Pool.Query(ctx, expenseSelect+` WHERE e.created_at >= $1 AND e.created_at < $2 ORDER BY e.created_at DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying expense records by period: %w", err)
	}
	defer rows.Close()
	return scanExpenseRows(rows)
}

func (r *expenseRepository) SaveExpense(ctx context.Context, record domain.ExpenseRecord) error {
	query := `
		INSERT INTO expenses (expense_id, amount, category_id, description, attachment_url, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	var description, attachmentURL *string
	if record.Description != "" {
		description = &record.Description
	}
	if record.AttachmentURL != "" {
		attachmentURL = &record.AttachmentURL
	}

	_, err := r.Pool.Exec(ctx, query,
		record.ExpenseID,
		record.Amount,
		record.CategoryID,
		description,
		attachmentURL,
		record.RecordedBy,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense record: %w", err)
	}
	return nil
}
