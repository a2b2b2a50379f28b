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

// financeHandler handles HTTP requests for income and expense records.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{financeService: fs}
}

// registerFinanceRoutes registers income/expense/category routes.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", requireCap(domain.CapRecordIncome), h.createIncome)
		incomes.GET("", requireCap(domain.CapViewReports), h.listIncome)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", requireCap(domain.CapRecordExpense), h.createExpense)
		expenses.GET("", requireCap(domain.CapViewReports), h.listExpenses)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("/:type", requireCap(domain.CapViewReports), h.listCategories)
		categories.POST("/:type", requireCap(domain.CapManageSettings), h.createCategory)
	}
}

func (h *financeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.financeService.RecordIncome(c.Request.Context(), req, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record income"})
		return
	}

	logger.Info("Income recorded", slog.String("receipt_number", record.ReceiptNumber))
	c.JSON(http.StatusCreated, dto.ToIncomeResponse(*record))
}

func (h *financeHandler) listIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	records, err := h.financeService.ListIncome(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list income records"})
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeResponses(records))
}

func (h *financeHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.financeService.RecordExpense(c.Request.Context(), req, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(*record))
}

func (h *financeHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	records, err := h.financeService.ListExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expense records"})
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponses(records))
}

// categoryType parses the :type route parameter into a category namespace.
func categoryType(c *gin.Context) (domain.CategoryType, bool) {
	switch c.Param("type") {
	case "income":
		return domain.CategoryTypeIncome, true
	case "expense":
		return domain.CategoryTypeExpense, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category type must be 'income' or 'expense'"})
		return "", false
	}
}

func (h *financeHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	catType, ok := categoryType(c)
	if !ok {
		return
	}

	categories, err := h.financeService.ListCategories(c.Request.Context(), catType)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *financeHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	catType, ok := categoryType(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.financeService.CreateCategory(c.Request.Context(), catType, req, user.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		logger.Error("Failed to create category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}
