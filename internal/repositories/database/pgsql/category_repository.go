package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
)

type categoryRepository struct {
	BaseRepository
}

func newCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &categoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

// tableFor maps a category namespace to its table. The two namespaces are
// separate tables so ids never collide across types.
func tableFor(categoryType domain.CategoryType) (string, error) {
	switch categoryType {
	case domain.CategoryTypeIncome:
		return "income_categories", nil
	case domain.CategoryTypeExpense:
		return "expense_categories", nil
	default:
		return "", fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, categoryType)
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	table, err := tableFor(categoryType)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, fmt.Sprintf(`SELECT category_id, name FROM %s ORDER BY name`, table))
	if err != nil {
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.CategoryID, &cat.Name); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		cat.Type = categoryType
		result = append(result, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return result, nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryType domain.CategoryType, categoryID string) (*domain.Category, error) {
	table, err := tableFor(categoryType)
	if err != nil {
		return nil, err
	}

	var cat domain.Category
	err = r.Pool.QueryRow(ctx, fmt.Sprintf(`SELECT category_id, name FROM %s WHERE category_id = $1`, table), categoryID).
		Scan(&cat.CategoryID, &cat.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("error querying category: %w", err)
	}
	cat.Type = categoryType
	return &cat, nil
}

func (r *categoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	table, err := tableFor(category.Type)
	if err != nil {
		return err
	}

	_, err = r.Pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (category_id, name) VALUES ($1, $2)`, table),
		category.CategoryID, category.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category name %q", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}
