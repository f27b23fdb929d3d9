package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finbooks/bookkeeping_app/internal/apperrors"
	portssvc "github.com/finbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/finbooks/bookkeeping_app/internal/dto"
	"github.com/finbooks/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incomeHandler handles HTTP requests related to income entries.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

// newIncomeHandler creates a new incomeHandler.
func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{
		incomeService: is,
	}
}

// RegisterIncomeRoutes registers routes related to income entries.
func RegisterIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	income := rg.Group("/income")
	{
		income.GET("", h.listIncome)
		income.POST("", h.createIncome)
		income.DELETE("/:id", h.deleteIncome)
	}
}

// listIncome godoc
// @Summary List income entries
// @Description Retrieves all recorded income entries
// @Tags income
// @Produce json
// @Success 200 {array} dto.IncomeResponse
// @Failure 500 {object} map[string]string "Failed to list income entries"
// @Router /income [get]
func (h *incomeHandler) listIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.incomeService.ListIncome(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list income entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list income entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponseList(entries))
}

// createIncome godoc
// @Summary Record an income entry
// @Description Records a new income entry and returns it with its assigned id
// @Tags income
// @Accept json
// @Produce json
// @Param entry body dto.CreateIncomeRequest true "Income entry"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record income entry"
// @Router /income [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.incomeService.CreateIncome(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create income entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record income entry"})
		return
	}

	logger.Info("Income entry created", slog.Int64("income_id", entry.IncomeID))
	c.JSON(http.StatusCreated, dto.ToIncomeResponse(entry))
}

// deleteIncome godoc
// @Summary Delete an income entry
// @Description Deletes the income entry with the given id
// @Tags income
// @Produce json
// @Param id path int true "Income ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} dto.DeleteResponse "No income record found with that ID"
// @Failure 500 {object} dto.DeleteResponse "Failed to delete income record"
// @Router /income/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("Invalid income id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.incomeService.DeleteIncome(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Income entry not found for deletion", slog.Int64("income_id", id))
			c.JSON(http.StatusNotFound, dto.DeleteResponse{
				Success: false,
				Message: "No income record found with that ID",
			})
			return
		}
		logger.Error("Failed to delete income entry", slog.String("error", err.Error()), slog.Int64("income_id", id))
		c.JSON(http.StatusInternalServerError, dto.DeleteResponse{
			Success: false,
			Message: "Failed to delete income record",
		})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Income record deleted successfully",
	})
}
