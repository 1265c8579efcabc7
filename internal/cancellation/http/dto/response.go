package dto

import (
	"encoding/json"
	"time"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
)

// CancellationResponse represents a cancellation outcome in API responses.
type CancellationResponse struct {
	OrderID      string      `json:"orderId"`
	Status       string      `json:"status"`
	Message      string      `json:"message"`
	CancelledAt  time.Time   `json:"cancelledAt"`
	RefundAmount json.Number `json:"refundAmount"`
	RefundStatus string      `json:"refundStatus"`
}

// MapOutcomeToResponse converts a cancellation outcome to an API response.
func MapOutcomeToResponse(outcome *cancellationDomain.CancellationOutcome) CancellationResponse {
	return CancellationResponse{
		OrderID:      outcome.OrderID,
		Status:       string(outcome.Status),
		Message:      outcome.Message,
		CancelledAt:  outcome.CancelledAt,
		RefundAmount: json.Number(outcome.RefundAmount.StringFixed(2)),
		RefundStatus: outcome.RefundStatus,
	}
}
