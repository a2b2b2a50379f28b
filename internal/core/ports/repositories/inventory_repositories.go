package repositories

import (
	"context"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// InventoryReader defines read operations for inventory data.
type InventoryReader interface {
	// ListItems retrieves all items with their derived purchase/sale totals.
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)

	// FindItemByID retrieves a single item with derived totals.
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListTransactions retrieves stock movements newest first, optionally
	// restricted to one item (empty itemID means all items).
	ListTransactions(ctx context.Context, itemID string) ([]domain.InventoryTransaction, error)
}

// InventoryWriter defines write operations for inventory data.
type InventoryWriter interface {
	// SaveItem persists a new inventory item.
	SaveItem(ctx context.Context, item domain.InventoryItem) error

	// RecordStockTransaction atomically inserts the movement and adjusts the
	// item's cached current_stock inside one database transaction. A sale
	// whose quantity exceeds the current stock fails with
	// apperrors.ErrInsufficientStock and leaves the stock unchanged.
	RecordStockTransaction(ctx context.Context, txn domain.InventoryTransaction) error
}

// InventoryRepositoryFacade combines all inventory repository interfaces.
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
