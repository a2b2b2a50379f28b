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

type inventoryRepository struct {
	BaseRepository
}

func newInventoryRepository(db *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &inventoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.InventoryRepositoryFacade = (*inventoryRepository)(nil)

const inventoryItemSelect = `
	SELECT i.item_id, i.name, i.category, i.unit, i.initial_stock, i.current_stock,
	       i.low_stock_threshold, i.cost_price, i.sell_price,
	       COALESCE(SUM(t.quantity) FILTER (WHERE t.type = 'purchase'), 0) AS total_purchased,
	       COALESCE(SUM(t.quantity) FILTER (WHERE t.type = 'sale'), 0) AS total_sold,
	       i.created_at
	FROM inventory_items i
	LEFT JOIN inventory_transactions t ON t.item_id = i.item_id
`

func scanInventoryItemRows(rows pgx.Rows) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(
			&it.ItemID,
			&it.Name,
			&it.Category,
			&it.Unit,
			&it.InitialStock,
			&it.CurrentStock,
			&it.LowStockThreshold,
			&it.CostPrice,
			&it.SellPrice,
			&it.TotalPurchased,
			&it.TotalSold,
			&it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning inventory item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}
	return items, nil
}

func (r *inventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	query := inventoryItemSelect + `
	GROUP BY i.item_id
	ORDER BY i.name ASC
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying inventory items: %w", err)
	}
	defer rows.Close()

	return scanInventoryItemRows(rows)
}

func (r *inventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := inventoryItemSelect + `
	WHERE i.item_id = $1
	GROUP BY i.item_id
	`
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("error querying inventory item %s: %w", itemID, err)
	}
	defer rows.Close()

	items, err := scanInventoryItemRows(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: inventory item %s", apperrors.ErrNotFound, itemID)
	}
	return &items[0], nil
}

func (r *inventoryRepository) ListTransactions(ctx context.Context, itemID string) ([]domain.InventoryTransaction, error) {
	query := `
		SELECT t.transaction_id, t.item_id, i.name, t.type, t.quantity, t.note,
		       t.recorded_by, t.created_at
		FROM inventory_transactions t
		JOIN inventory_items i ON i.item_id = t.item_id
	`
	args := []any{}
	if itemID != "" {
		query += ` WHERE t.item_id = $1`
		args = append(args, itemID)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying inventory transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.InventoryTransaction{}
	for rows.Next() {
		var t domain.InventoryTransaction
		var note *string
		if err := rows.Scan(&t.TransactionID, &t.ItemID, &t.ItemName, &t.Type, &t.Quantity, &note, &t.RecordedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning inventory transaction row: %w", err)
		}
		if note != nil {
			t.Note = *note
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory transaction rows: %w", err)
	}
	return txns, nil
}

func (r *inventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (item_id, name, category, unit, initial_stock,
			current_stock, low_stock_threshold, cost_price, sell_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		item.Name,
		item.Category,
		item.Unit,
		item.InitialStock,
		item.CurrentStock,
		item.LowStockThreshold,
		item.CostPrice,
		item.SellPrice,
		item.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: inventory item %s already exists", apperrors.ErrDuplicate, item.Name)
		}
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

func (r *inventoryRepository) RecordStockTransaction(ctx context.Context, txn domain.InventoryTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var currentStock int64
	err = tx.QueryRow(ctx,
		`SELECT current_stock FROM inventory_items WHERE item_id = $1 FOR UPDATE`,
		txn.ItemID,
	).Scan(&currentStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: inventory item %s", apperrors.ErrNotFound, txn.ItemID)
		}
		return fmt.Errorf("error locking inventory item %s: %w", txn.ItemID, err)
	}

	delta := txn.Quantity
	if txn.Type == domain.StockSale {
		if txn.Quantity > currentStock {
			return fmt.Errorf("%w: sale of %d exceeds current stock %d", apperrors.ErrInsufficientStock, txn.Quantity, currentStock)
		}
		delta = -txn.Quantity
	}

	var note *string
	if txn.Note != "" {
		note = &txn.Note
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO inventory_transactions (transaction_id, item_id, type, quantity, note, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, txn.TransactionID, txn.ItemID, txn.Type, txn.Quantity, note, txn.RecordedBy, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert stock transaction: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE inventory_items SET current_stock = current_stock + $1 WHERE item_id = $2`,
		delta, txn.ItemID,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust current stock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit stock transaction: %w", err)
	}
	return nil
}
