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

// receivableHandler handles HTTP requests related to accounts receivable.
type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
}

// newReceivableHandler creates a new receivableHandler.
func newReceivableHandler(rs portssvc.ReceivableSvcFacade) *receivableHandler {
	return &receivableHandler{
		receivableService: rs,
	}
}

// registerReceivableRoutes registers routes related to accounts receivable.
func registerReceivableRoutes(rg *gin.RouterGroup, receivableService portssvc.ReceivableSvcFacade) {
	h := newReceivableHandler(receivableService)

	receivable := rg.Group("/receivable")
	{
		receivable.GET("", h.listReceivables)
		receivable.POST("", h.createReceivable)
		receivable.PUT("/:id", h.updateReceivableStatus)
		receivable.DELETE("/:id", h.deleteReceivable)
	}
}

// listReceivables godoc
// @Summary List accounts receivable
// @Description Retrieves all accounts receivable rows
// @Tags receivable
// @Produce json
// @Success 200 {array} dto.ReceivableResponse
// @Failure 500 {object} map[string]string "Failed to list receivables"
// @Router /receivable [get]
func (h *receivableHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receivables, err := h.receivableService.ListReceivables(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list receivables", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receivables"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivableResponseList(receivables))
}

// createReceivable godoc
// @Summary Record an accounts receivable entry
// @Description Records a new receivable; status defaults to Unpaid when omitted
// @Tags receivable
// @Accept json
// @Produce json
// @Param receivable body dto.CreateReceivableRequest true "Receivable details"
// @Success 201 {object} dto.ReceivableResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record receivable"
// @Router /receivable [post]
func (h *receivableHandler) createReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receivable, err := h.receivableService.CreateReceivable(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create receivable", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record receivable"})
		return
	}

	logger.Info("Receivable created", slog.Int64("receivable_id", receivable.ReceivableID))
	c.JSON(http.StatusCreated, dto.ToReceivableResponse(receivable))
}

// updateReceivableStatus godoc
// @Summary Update the status of a receivable
// @Description Overwrites the status of the matching receivable; a missing id is a benign no-op
// @Tags receivable
// @Accept json
// @Produce json
// @Param id path int true "Receivable ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update receivable status"
// @Router /receivable/{id} [put]
func (h *receivableHandler) updateReceivableStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("Invalid receivable id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateReceivableStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.receivableService.UpdateReceivableStatus(c.Request.Context(), id, req.Status); err != nil {
		logger.Error("Failed to update receivable status", slog.String("error", err.Error()), slog.Int64("receivable_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update receivable status"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Updated successfully"})
}

// deleteReceivable godoc
// @Summary Delete a receivable
// @Description Deletes the receivable with the given id
// @Tags receivable
// @Produce json
// @Param id path int true "Receivable ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} dto.DeleteResponse "No receivable record found with that ID"
// @Failure 500 {object} dto.DeleteResponse "Failed to delete receivable record"
// @Router /receivable/{id} [delete]
func (h *receivableHandler) deleteReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("Invalid receivable id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.receivableService.DeleteReceivable(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Receivable not found for deletion", slog.Int64("receivable_id", id))
			c.JSON(http.StatusNotFound, dto.DeleteResponse{
				Success: false,
				Message: "No receivable record found with that ID",
			})
			return
		}
		logger.Error("Failed to delete receivable", slog.String("error", err.Error()), slog.Int64("receivable_id", id))
		c.JSON(http.StatusInternalServerError, dto.DeleteResponse{
			Success: false,
			Message: "Failed to delete receivable record",
		})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Receivable record deleted successfully",
	})
}
