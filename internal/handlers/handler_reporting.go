package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/finbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/finbooks/bookkeeping_app/internal/dto"
	"github.com/finbooks/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to the derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to the derived reports.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/cash-flow", h.getCashFlow)
	}
}

// getIncomeStatement godoc
// @Summary Generate the income statement
// @Description Returns all-time income and expense totals and the resulting profit or loss
// @Tags reports
// @Produce json
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 500 {object} map[string]string "Failed to generate income statement"
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.IncomeStatement(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate income statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate income statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate the balance sheet
// @Description Returns the outstanding unpaid payable and receivable totals
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 500 {object} map[string]string "Failed to generate balance sheet"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getCashFlow godoc
// @Summary Generate the cash flow report
// @Description Returns the dated income and expense entries between startDate and endDate inclusive
// @Tags reports
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid or missing date parameters"
// @Failure 500 {object} map[string]string "Failed to generate cash flow report"
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid cash flow query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	// Dates are validated by the binding layer.
	from, _ := time.Parse("2006-01-02", params.StartDate)
	to, _ := time.Parse("2006-01-02", params.EndDate)

	if from.After(to) {
		logger.Warn("Invalid cash flow date range", slog.String("startDate", params.StartDate), slog.String("endDate", params.EndDate))
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be before or equal to endDate"})
		return
	}

	report, err := h.reportingService.CashFlow(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to generate cash flow report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cash flow report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}
