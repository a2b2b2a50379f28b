package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
)

type incomeRepository struct {
	BaseRepository
}

func newIncomeRepository(db *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &incomeRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure incomeRepository implements the facade.
var _ portsrepo.IncomeRepositoryFacade = (*incomeRepository)(nil)

const incomeSelect = `
	SELECT
		i.income_id,
		i.amount,
		i.category_id,
		c.name,
		i.description,
		i.receipt_number,
		i.recorded_by,
		i.created_at
	FROM income i
	LEFT JOIN income_categories c ON i.category_id = c.category_id
`

func scanIncomeRows(rows pgx.Rows) ([]domain.IncomeRecord, error) {
	var result []domain.IncomeRecord
	for rows.Next() {
		var rec domain.IncomeRecord
		// category_id is ON DELETE SET NULL, so it scans through a pointer
		// like the other nullable columns.
		var categoryID, categoryName, description *string

		if err := rows.Scan(
			&rec.IncomeID,
			&rec.Amount,
			&categoryID,
			&categoryName,
			&description,
			&rec.ReceiptNumber,
			&rec.RecordedBy,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning income row: %w", err)
		}

		// A deleted category still renders with the fallback label.
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
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", err)
	}

	if result == nil {
		result = []domain.IncomeRecord{}
	}
	return result, nil
}

func (r *incomeRepository) ListIncome(ctx context.Context) ([]domain.IncomeRecord, error) {
	rows, err := r.Pool.Query(ctx, incomeSelect+` ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying income records: %w", err)
	}
	defer rows.Close()
	return scanIncomeRows(rows)
}

func (r *incomeRepository) ListIncomeBetween(ctx context.Context, from, to time.Time) ([]domain.IncomeRecord, error) {
	rows, err := r.Pool.Query(ctx, incomeSelect+` WHERE i.created_at >= $1 AND i.created_at < $2 ORDER BY i.created_at DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying income records by period: %w", err)
	}
	defer rows.Close()
	return scanIncomeRows(rows)
}

func (r *incomeRepository) FindIncomeByReceiptNumber(ctx context.Context, receiptNumber string) (*domain.IncomeRecord, error) {
	rows, err := r.Pool.Query(ctx, incomeSelect+` WHERE i.receipt_number = $1`, receiptNumber)
	if err != nil {
		return nil, fmt.Errorf("error querying income by receipt number: %w", err)
	}
	defer rows.Close()

	records, err := scanIncomeRows(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: receipt number %s", apperrors.ErrNotFound, receiptNumber)
	}
	return &records[0], nil
}

func (r *incomeRepository) SaveIncome(ctx context.Context, record domain.IncomeRecord) error {
	query := `
		INSERT INTO income (income_id, amount, category_id, description, receipt_number, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	var description *string
	if record.Description != "" {
		description = &record.Description
	}

	_, err := r.Pool.Exec(ctx, query,
		record.IncomeID,
		record.Amount,
		record.CategoryID,
		description,
		record.ReceiptNumber,
		record.RecordedBy,
		record.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation; the receipt_number constraint is the
		// store-level uniqueness guarantee.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: receipt number %s", apperrors.ErrDuplicate, record.ReceiptNumber)
		}
		return fmt.Errorf("failed to save income record: %w", err)
	}
	return nil
}
