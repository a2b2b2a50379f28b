package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/dto"
	"github.com/nunsahui/cafeledger/internal/middleware"
)

// reportHandler serves the PDF documents and the monthly email trigger.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/receipt/:number", requireCap(domain.CapViewReports), h.getReceipt)
		reports.GET("/financial.pdf", requireCap(domain.CapViewReports), h.getFinancialReport)
		reports.GET("/salary.pdf", requireCap(domain.CapViewReports), h.getSalaryReport)
		reports.GET("/inventory.pdf", requireCap(domain.CapManageInventory), h.getInventoryReport)
		reports.GET("/salaries", requireCap(domain.CapViewReports), h.getSalaryRows)
		reports.POST("/email-monthly", requireCap(domain.CapSendReports), h.sendMonthlyReport)
	}
}

// serveDocument writes a rendered PDF as a file download.
func serveDocument(c *gin.Context, doc *portssvc.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

func (h *reportHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptNumber := c.Param("number")

	doc, err := h.reportingService.ReceiptDocument(c.Request.Context(), receiptNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
			return
		}
		logger.Error("Failed to render receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
		return
	}
	serveDocument(c, doc)
}

func (h *reportHandler) getFinancialReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a YYYY-MM-DD date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a YYYY-MM-DD date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return
	}

	doc, err := h.reportingService.FinancialReportDocument(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to render financial report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate financial report"})
		return
	}
	serveDocument(c, doc)
}

func (h *reportHandler) getSalaryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.reportingService.SalaryReportDocument(c.Request.Context())
	if err != nil {
		logger.Error("Failed to render salary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate salary report"})
		return
	}
	serveDocument(c, doc)
}

func (h *reportHandler) getInventoryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.reportingService.InventoryReportDocument(c.Request.Context())
	if err != nil {
		logger.Error("Failed to render inventory report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate inventory report"})
		return
	}
	serveDocument(c, doc)
}

func (h *reportHandler) getSalaryRows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.SalaryRows(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to compute salary rows", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute salary data"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *reportHandler) sendMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendMonthlyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SendMonthlyReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.SendMonthlySummary(c.Request.Context(), time.Month(req.Month), req.Year, user.Email)
	if err != nil {
		logger.Error("Failed to send monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send monthly report"})
		return
	}

	logger.Info("Monthly summary sent", slog.String("recipient", summary.RecipientEmail))
	c.JSON(http.StatusOK, summary)
}
