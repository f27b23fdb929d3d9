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

// payableHandler handles HTTP requests related to accounts payable.
type payableHandler struct {
	payableService portssvc.PayableSvcFacade
}

// newPayableHandler creates a new payableHandler.
func newPayableHandler(ps portssvc.PayableSvcFacade) *payableHandler {
	return &payableHandler{
		payableService: ps,
	}
}

// RegisterPayableRoutes registers routes related to accounts payable.
func RegisterPayableRoutes(rg *gin.RouterGroup, payableService portssvc.PayableSvcFacade) {
	h := newPayableHandler(payableService)

	payable := rg.Group("/payable")
	{
		payable.GET("", h.listPayables)
		payable.POST("", h.createPayable)
		payable.PUT("/:id", h.updatePayableStatus)
		payable.DELETE("/:id", h.deletePayable)
	}
}

// listPayables godoc
// @Summary List accounts payable
// @Description Retrieves all accounts payable rows
// @Tags payable
// @Produce json
// @Success 200 {array} dto.PayableResponse
// @Failure 500 {object} map[string]string "Failed to list payables"
// @Router /payable [get]
func (h *payableHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payables, err := h.payableService.ListPayables(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payables", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payables"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayableResponseList(payables))
}

// createPayable godoc
// @Summary Record an accounts payable entry
// @Description Records a new payable; status defaults to Unpaid when omitted
// @Tags payable
// @Accept json
// @Produce json
// @Param payable body dto.CreatePayableRequest true "Payable details"
// @Success 201 {object} dto.PayableResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record payable"
// @Router /payable [post]
func (h *payableHandler) createPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payable, err := h.payableService.CreatePayable(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create payable", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payable"})
		return
	}

	logger.Info("Payable created", slog.Int64("payable_id", payable.PayableID))
	c.JSON(http.StatusCreated, dto.ToPayableResponse(payable))
}

// updatePayableStatus godoc
// @Summary Update the status of a payable
// @Description Overwrites the status of the matching payable; a missing id is a benign no-op
// @Tags payable
// @Accept json
// @Produce json
// @Param id path int true "Payable ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update payable status"
// @Router /payable/{id} [put]
func (h *payableHandler) updatePayableStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("Invalid payable id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updatePayableStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.payableService.UpdatePayableStatus(c.Request.Context(), id, req.Status); err != nil {
		logger.Error("Failed to update payable status", slog.String("error", err.Error()), slog.Int64("payable_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payable status"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Updated successfully"})
}

// deletePayable godoc
// @Summary Delete a payable
// @Description Deletes the payable with the given id
// @Tags payable
// @Produce json
// @Param id path int true "Payable ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} dto.DeleteResponse "No payable record found with that ID"
// @Failure 500 {object} dto.DeleteResponse "Failed to delete payable record"
// @Router /payable/{id} [delete]
func (h *payableHandler) deletePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("Invalid payable id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.payableService.DeletePayable(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payable not found for deletion", slog.Int64("payable_id", id))
			c.JSON(http.StatusNotFound, dto.DeleteResponse{
				Success: false,
				Message: "No payable record found with that ID",
			})
			return
		}
		logger.Error("Failed to delete payable", slog.String("error", err.Error()), slog.Int64("payable_id", id))
		c.JSON(http.StatusInternalServerError, dto.DeleteResponse{
			Success: false,
			Message: "Failed to delete payable record",
		})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Payable record deleted successfully",
	})
}
