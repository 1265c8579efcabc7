// Package http provides HTTP handlers for the order processing pipeline.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/orders/internal/httputil"
	"github.com/allisson/orders/internal/processing/http/dto"
	processingUseCase "github.com/allisson/orders/internal/processing/usecase"
	customValidation "github.com/allisson/orders/internal/validation"
)

// ProcessingHandler handles HTTP requests for order processing.
type ProcessingHandler struct {
	processingUseCase processingUseCase.ProcessingUseCase
	logger            *slog.Logger
}

// NewProcessingHandler creates a new processing handler.
func NewProcessingHandler(
	processingUseCase processingUseCase.ProcessingUseCase,
	logger *slog.Logger,
) *ProcessingHandler {
	return &ProcessingHandler{
		processingUseCase: processingUseCase,
		logger:            logger,
	}
}

// ProcessHandler runs the processing pipeline for an order.
// POST /api/v1/processing
// Returns 200 OK with the processing snapshot, 409 Conflict when the order was already processed.
func (h *ProcessingHandler) ProcessHandler(c *gin.Context) {
	var req dto.ProcessOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	snapshot, err := h.processingUseCase.Run(c.Request.Context(), req.OrderID, req.ProcessingNotes)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSnapshotToResponse(snapshot))
}

// GetStatusHandler returns the processing snapshot of an order.
// GET /api/v1/processing/:orderId
func (h *ProcessingHandler) GetStatusHandler(c *gin.Context) {
	snapshot, err := h.processingUseCase.GetStatus(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSnapshotToResponse(snapshot))
}
