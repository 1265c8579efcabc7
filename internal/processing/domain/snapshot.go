package domain

import "time"

// ProcessingSnapshot is the read model returned by pipeline runs and status queries.
type ProcessingSnapshot struct {
	OrderID            string
	Status             ProcessingStatus
	InventoryAvailable *bool
	InventoryCheck     *string
	ValidationPassed   *bool
	ValidationResult   *string
	ProcessingNotes    string
	ProcessedAt        *time.Time
	Message            string
}

// NewSnapshot builds a snapshot of the record with the given message.
func NewSnapshot(record *ProcessingRecord, message string) *ProcessingSnapshot {
	return &ProcessingSnapshot{
		OrderID:            record.OrderID,
		Status:             record.CurrentStatus(),
		InventoryAvailable: record.InventoryAvailable,
		InventoryCheck:     record.InventoryCheck,
		ValidationPassed:   record.ValidationPassed,
		ValidationResult:   record.ValidationResult,
		ProcessingNotes:    record.ProcessingNotes,
		ProcessedAt:        record.ProcessedAt,
		Message:            message,
	}
}
