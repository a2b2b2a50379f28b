package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransactionType is the direction of a stock movement.
type StockTransactionType string

const (
	StockPurchase StockTransactionType = "purchase"
	StockSale     StockTransactionType = "sale"
)

// InventoryItem is a tracked stock item. CurrentStock is a cached derived
// value: initial_stock plus purchases minus sales. The transaction history is
// the source of truth for stock movement.
type InventoryItem struct {
	ItemID            string          `json:"itemID"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	InitialStock      int64           `json:"initialStock"`
	CurrentStock      int64           `json:"currentStock"`
	LowStockThreshold int64           `json:"lowStockThreshold"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellPrice         decimal.Decimal `json:"sellPrice"`
	TotalPurchased    int64           `json:"totalPurchased"` // derived on read
	TotalSold         int64           `json:"totalSold"`      // derived on read
	CreatedAt         time.Time       `json:"createdAt"`
}

// StockStatus classifies an item's stock level.
type StockStatus string

const (
	StockStatusOK  StockStatus = "OK"
	StockStatusLow StockStatus = "LOW"
	StockStatusOut StockStatus = "OUT"
)

// Status derives the stock status from the cached stock level and the
// configured threshold. OUT wins over LOW when the item is empty.
func (i InventoryItem) Status() StockStatus {
	switch {
	case i.CurrentStock == 0:
		return StockStatusOut
	case i.CurrentStock <= i.LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}

// InventoryTransaction is an immutable stock movement record.
type InventoryTransaction struct {
	TransactionID string               `json:"transactionID"`
	ItemID        string               `json:"itemID"`
	ItemName      string               `json:"itemName"` // joined for display
	Type          StockTransactionType `json:"type"`
	Quantity      int64                `json:"quantity"`
	Note          string               `json:"note,omitempty"`
	RecordedBy    string               `json:"recordedBy"`
	CreatedAt     time.Time            `json:"createdAt"`
}
