package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/core/stats"
	"github.com/nunsahui/cafeledger/internal/dto"
	"github.com/nunsahui/cafeledger/internal/middleware"
)

// dashboardHandler serves the aggregated figures behind the dashboard charts.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard", requireCap(domain.CapViewReports))
	{
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/monthly-series", h.getMonthlySeries)
		dashboard.GET("/category-breakdown", h.getCategoryBreakdown)
	}
}

func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dashboardStats, err := h.reportingService.DashboardStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard statistics"})
		return
	}

	resp := dto.DashboardStatsResponse{
		TodayIncome:     dashboardStats.TodayIncome,
		TodayExpenses:   dashboardStats.TodayExpenses,
		WeeklyIncome:    dashboardStats.WeeklyIncome,
		WeeklyExpenses:  dashboardStats.WeeklyExpenses,
		MonthlyIncome:   dashboardStats.MonthlyIncome,
		MonthlyExpenses: dashboardStats.MonthlyExpenses,
		TotalIncome:     dashboardStats.TotalIncome,
		TotalExpenses:   dashboardStats.TotalExpenses,
		CurrentBalance:  dashboardStats.CurrentBalance,
		ProfitMargin:    stats.ProfitMargin(dashboardStats.TotalIncome, dashboardStats.TotalExpenses),
	}
	c.JSON(http.StatusOK, resp)
}

func (h *dashboardHandler) getMonthlySeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	monthsBack := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 36 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be an integer between 1 and 36"})
			return
		}
		monthsBack = parsed
	}

	series, err := h.reportingService.MonthlySeries(c.Request.Context(), monthsBack)
	if err != nil {
		logger.Error("Failed to compute monthly series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly series"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthPointResponses(series))
}

func (h *dashboardHandler) getCategoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	catType := domain.CategoryType(c.DefaultQuery("type", "income"))
	if catType != domain.CategoryTypeIncome && catType != domain.CategoryTypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'income' or 'expense'"})
		return
	}

	breakdown, err := h.reportingService.CategoryBreakdown(c.Request.Context(), catType)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category breakdown"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCategorySliceResponses(breakdown))
}
