// Package http provides HTTP handlers for the order cancellation workflow.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/orders/internal/cancellation/http/dto"
	cancellationUseCase "github.com/allisson/orders/internal/cancellation/usecase"
	"github.com/allisson/orders/internal/httputil"
	customValidation "github.com/allisson/orders/internal/validation"
)

// CancellationHandler handles HTTP requests for order cancellation.
type CancellationHandler struct {
	cancellationUseCase cancellationUseCase.CancellationUseCase
	logger              *slog.Logger
}

// NewCancellationHandler creates a new cancellation handler.
func NewCancellationHandler(
	cancellationUseCase cancellationUseCase.CancellationUseCase,
	logger *slog.Logger,
) *CancellationHandler {
	return &CancellationHandler{
		cancellationUseCase: cancellationUseCase,
		logger:              logger,
	}
}

// CancelHandler cancels an order and initiates its refund.
// POST /api/v1/orders/cancel
// Returns 200 OK with the outcome, 422 Unprocessable Entity when the order is no longer cancellable.
func (h *CancellationHandler) CancelHandler(c *gin.Context) {
	var req dto.CancelOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	outcome, err := h.cancellationUseCase.Cancel(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOutcomeToResponse(outcome))
}

// CanCancelHandler reports whether an order may be cancelled.
// GET /api/v1/orders/:orderId/can-cancel
// Returns 200 OK with a JSON boolean.
func (h *CancellationHandler) CanCancelHandler(c *gin.Context) {
	cancellable, err := h.cancellationUseCase.CanCancel(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, cancellable)
}
