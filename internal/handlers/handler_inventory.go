package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/dto"
	"github.com/nunsahui/cafeledger/internal/middleware"
)

// inventoryHandler handles HTTP requests for stock items and movements.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory", requireCap(domain.CapManageInventory))
	{
		inventory.POST("/items", h.createItem)
		inventory.GET("/items", h.listItems)
		inventory.POST("/items/:id/transactions", h.recordTransaction)
		inventory.GET("/items/:id/transactions", h.listItemTransactions)
		inventory.GET("/transactions", h.listAllTransactions)
	}
}

func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Inventory item already exists"})
			return
		}
		logger.Error("Failed to create inventory item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(*item))
}

func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list inventory items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inventory items"})
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponses(items))
}

func (h *inventoryHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.CreateStockTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.inventoryService.RecordTransaction(c.Request.Context(), itemID, req, user)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		case errors.Is(err, apperrors.ErrInsufficientStock), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record stock transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record stock transaction"})
		}
		return
	}
	c.JSON(http.StatusCreated, txn)
}

func (h *inventoryHandler) listItemTransactions(c *gin.Context) {
	h.listTransactions(c, c.Param("id"))
}

func (h *inventoryHandler) listAllTransactions(c *gin.Context) {
	h.listTransactions(c, "")
}

func (h *inventoryHandler) listTransactions(c *gin.Context, itemID string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txns, err := h.inventoryService.ListTransactions(c.Request.Context(), itemID)
	if err != nil {
		logger.Error("Failed to list stock transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock transactions"})
		return
	}
	c.JSON(http.StatusOK, txns)
}
