package dto

import (
	"time"

	processingDomain "github.com/allisson/orders/internal/processing/domain"
)

// ProcessingResponse represents a processing snapshot in API responses.
type ProcessingResponse struct {
	OrderID            string     `json:"orderId"`
	Status             string     `json:"status"`
	InventoryAvailable *bool      `json:"inventoryAvailable"`
	InventoryCheck     *string    `json:"inventoryCheck"`
	ValidationPassed   *bool      `json:"validationPassed"`
	ValidationResult   *string    `json:"validationResult"`
	ProcessingNotes    string     `json:"processingNotes,omitempty"`
	ProcessedAt        *time.Time `json:"processedAt"`
	Message            string     `json:"message,omitempty"`
}

// MapSnapshotToResponse converts a processing snapshot to an API response.
func MapSnapshotToResponse(snapshot *processingDomain.ProcessingSnapshot) ProcessingResponse {
	return ProcessingResponse{
		OrderID:            snapshot.OrderID,
		Status:             string(snapshot.Status),
		InventoryAvailable: snapshot.InventoryAvailable,
		InventoryCheck:     snapshot.InventoryCheck,
		ValidationPassed:   snapshot.ValidationPassed,
		ValidationResult:   snapshot.ValidationResult,
		ProcessingNotes:    snapshot.ProcessingNotes,
		ProcessedAt:        snapshot.ProcessedAt,
		Message:            snapshot.Message,
	}
}
