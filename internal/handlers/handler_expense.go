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

// expenseHandler handles HTTP requests related to expense entries.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers routes related to expense entries.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expense := rg.Group("/expense")
	{
		expense.GET("", h.listExpense)
		expense.POST("", h.createExpense)
		expense.DELETE("/:id", h.deleteExpense)
	}
}

// listExpense godoc
// @Summary List expense entries
// @Description Retrieves all recorded expense entries
// @Tags expense
// @Produce json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list expense entries"
// @Router /expense [get]
func (h *expenseHandler) listExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.expenseService.ListExpense(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list expense entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expense entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponseList(entries))
}

// createExpense godoc
// @Summary Record an expense entry
// @Description Records a new expense entry and returns it with its assigned id
// @Tags expense
// @Accept json
// @Produce json
// @Param entry body dto.CreateExpenseRequest true "Expense entry"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record expense entry"
// @Router /expense [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create expense entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense entry"})
		return
	}

	logger.Info("Expense entry created", slog.Int64("expense_id", entry.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(entry))
}

// deleteExpense godoc
// @Summary Delete an expense entry
// @Description Deletes the expense entry with the given id
// @Tags expense
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} dto.DeleteResponse "No expense record found with that ID"
// @Failure 500 {object} dto.DeleteResponse "Failed to delete expense record"
// @Router /expense/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("Invalid expense id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Expense entry not found for deletion", slog.Int64("expense_id", id))
			c.JSON(http.StatusNotFound, dto.DeleteResponse{
				Success: false,
				Message: "No expense record found with that ID",
			})
			return
		}
		logger.Error("Failed to delete expense entry", slog.String("error", err.Error()), slog.Int64("expense_id", id))
		c.JSON(http.StatusInternalServerError, dto.DeleteResponse{
			Success: false,
			Message: "Failed to delete expense record",
		})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Expense record deleted successfully",
	})
}
