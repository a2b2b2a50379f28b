package dto

import (
	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest is the payload for adding a stock item.
type CreateInventoryItemRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	Category          string          `json:"category" binding:"required,max=100"`
	Unit              string          `json:"unit" binding:"required,max=20"`
	InitialStock      int64           `json:"initialStock" binding:"min=0"`
	LowStockThreshold int64           `json:"lowStockThreshold" binding:"min=0"`
	CostPrice         decimal.Decimal `json:"costPrice" binding:"required"`
	SellPrice         decimal.Decimal `json:"sellPrice" binding:"required"`
}

// CreateStockTransactionRequest is the payload for a purchase or sale.
type CreateStockTransactionRequest struct {
	Type     domain.StockTransactionType `json:"type" binding:"required,oneof=purchase sale"`
	Quantity int64                       `json:"quantity" binding:"required,gt=0"`
	Note     string                      `json:"note" binding:"max=300"`
}

// InventoryItemResponse is the API representation of an inventory item.
type InventoryItemResponse struct {
	ItemID            string          `json:"itemID"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	InitialStock      int64           `json:"initialStock"`
	CurrentStock      int64           `json:"currentStock"`
	LowStockThreshold int64           `json:"lowStockThreshold"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellPrice         decimal.Decimal `json:"sellPrice"`
	TotalPurchased    int64           `json:"totalPurchased"`
	TotalSold         int64           `json:"totalSold"`
	Status            string          `json:"status"`
}

// ToInventoryItemResponse converts a domain item to its API shape.
func ToInventoryItemResponse(i domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:            i.ItemID,
		Name:              i.Name,
		Category:          i.Category,
		Unit:              i.Unit,
		InitialStock:      i.InitialStock,
		CurrentStock:      i.CurrentStock,
		LowStockThreshold: i.LowStockThreshold,
		CostPrice:         i.CostPrice,
		SellPrice:         i.SellPrice,
		TotalPurchased:    i.TotalPurchased,
		TotalSold:         i.TotalSold,
		Status:            string(i.Status()),
	}
}

// ToInventoryItemResponses converts a slice of domain items.
func ToInventoryItemResponses(items []domain.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		out[i] = ToInventoryItemResponse(item)
	}
	return out
}
