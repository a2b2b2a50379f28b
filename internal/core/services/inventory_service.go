package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/dto"
)

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
	audit         portssvc.AuditSvcFacade
}

// NewInventoryService creates the stock tracking service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, audit portssvc.AuditSvcFacade) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: inventoryRepo, audit: audit}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, actor domain.User) (*domain.InventoryItem, error) {
	item := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              req.Name,
		Category:          req.Category,
		Unit:              req.Unit,
		InitialStock:      req.InitialStock,
		CurrentStock:      req.InitialStock,
		LowStockThreshold: req.LowStockThreshold,
		CostPrice:         req.CostPrice,
		SellPrice:         req.SellPrice,
		CreatedAt:         time.Now(),
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	if err := s.audit.Append(ctx, domain.AuditInventoryItemAdded, actor.Email, map[string]any{
		"itemID":       item.ItemID,
		"name":         item.Name,
		"initialStock": item.InitialStock,
	}); err != nil {
		s.LogWarn(ctx, "audit append failed", "action", string(domain.AuditInventoryItemAdded), "error", err.Error())
	}

	return &item, nil
}

func (s *inventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) RecordTransaction(ctx context.Context, itemID string, req dto.CreateStockTransactionRequest, actor domain.User) (*domain.InventoryTransaction, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	txn := domain.InventoryTransaction{
		TransactionID: uuid.NewString(),
		ItemID:        item.ItemID,
		ItemName:      item.Name,
		Type:          req.Type,
		Quantity:      req.Quantity,
		Note:          req.Note,
		RecordedBy:    actor.UserID,
		CreatedAt:     time.Now(),
	}

	// The over-sale check lives inside the repository transaction so the
	// stock read and the movement insert cannot interleave with another
	// writer.
	if err := s.inventoryRepo.RecordStockTransaction(ctx, txn); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, domain.AuditStockRecorded, actor.Email, map[string]any{
		"itemID":   txn.ItemID,
		"itemName": txn.ItemName,
		"type":     string(txn.Type),
		"quantity": txn.Quantity,
	}); err != nil {
		s.LogWarn(ctx, "audit append failed", "action", string(domain.AuditStockRecorded), "error", err.Error())
	}

	return &txn, nil
}

func (s *inventoryService) ListTransactions(ctx context.Context, itemID string) ([]domain.InventoryTransaction, error) {
	txns, err := s.inventoryRepo.ListTransactions(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory transactions: %w", err)
	}
	return txns, nil
}
