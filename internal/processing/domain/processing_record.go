// Package domain defines the core domain models for order processing.
// A processing record tracks a single order through the inventory check and
// validation steps of the processing pipeline. One record exists per order id.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingStatus is the pipeline status of a processing record.
type ProcessingStatus string

const (
	StatusPending          ProcessingStatus = "PENDING"
	StatusInProgress       ProcessingStatus = "IN_PROGRESS"
	StatusInventoryChecked ProcessingStatus = "INVENTORY_CHECKED"
	StatusValidated        ProcessingStatus = "VALIDATED"
	StatusCompleted        ProcessingStatus = "COMPLETED"
	StatusFailed           ProcessingStatus = "FAILED"
	StatusCancelled        ProcessingStatus = "CANCELLED"
)

// SystemActor is the processedBy value for automated pipeline runs.
const SystemActor = "SYSTEM"

// Notes recorded by the inventory and validation steps.
const (
	InventoryAvailableNote   = "Inventory available for all items"
	InventoryUnavailableNote = "Some items are out of stock"
	ValidationPassedNote     = "Order validation passed"
	ValidationFailedNote     = "Order validation failed"
)

// Messages returned with the snapshot of a pipeline run.
const (
	MessageProcessed             = "Order processed successfully"
	MessageInventoryNotAvailable = "Order processing failed: Inventory not available"
	MessageValidationFailed      = "Order processing failed: Validation failed"
)

// IsTerminal reports whether the status ends a pipeline run.
func (s ProcessingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// ProcessingRecord tracks the processing state of one order.
type ProcessingRecord struct {
	// ID is the surrogate identifier of the record.
	ID uuid.UUID
	// OrderID is the external order identifier; unique and immutable.
	OrderID string
	// Status is the current pipeline status.
	Status ProcessingStatus
	// InventoryAvailable and InventoryCheck are set together by the inventory step.
	InventoryAvailable *bool
	InventoryCheck     *string
	// ValidationPassed and ValidationResult are set together by the validation step.
	ValidationPassed *bool
	ValidationResult *string
	// ProcessingNotes is free text supplied by the caller at creation.
	ProcessingNotes string
	// ProcessedBy identifies the actor that ran the pipeline.
	ProcessedBy string
	// ProcessedAt is set once, at the terminal transition.
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProcessingRecord creates an in-progress record for a pipeline run.
func NewProcessingRecord(orderID, notes, actor string, now time.Time) *ProcessingRecord {
	return &ProcessingRecord{
		ID:              uuid.Must(uuid.NewV7()),
		OrderID:         orderID,
		Status:          StatusInProgress,
		ProcessingNotes: notes,
		ProcessedBy:     actor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CurrentStatus returns the record status, defaulting to PENDING when unset.
func (r *ProcessingRecord) CurrentStatus() ProcessingStatus {
	if r.Status == "" {
		return StatusPending
	}
	return r.Status
}

// RecordInventory stores the inventory step result and advances to INVENTORY_CHECKED.
func (r *ProcessingRecord) RecordInventory(available bool, now time.Time) error {
	if r.CurrentStatus() != StatusInProgress || r.InventoryAvailable != nil {
		return ErrInvalidTransition
	}

	note := InventoryUnavailableNote
	if available {
		note = InventoryAvailableNote
	}

	r.InventoryAvailable = &available
	r.InventoryCheck = &note
	r.Status = StatusInventoryChecked
	r.UpdatedAt = now
	return nil
}

// RecordValidation stores the validation step result and advances to VALIDATED.
// Validation only runs after a successful inventory step.
func (r *ProcessingRecord) RecordValidation(passed bool, now time.Time) error {
	if r.CurrentStatus() != StatusInventoryChecked || r.InventoryAvailable == nil || !*r.InventoryAvailable ||
		r.ValidationPassed != nil {
		return ErrInvalidTransition
	}

	note := ValidationFailedNote
	if passed {
		note = ValidationPassedNote
	}

	r.ValidationPassed = &passed
	r.ValidationResult = &note
	r.Status = StatusValidated
	r.UpdatedAt = now
	return nil
}

// Fail moves the record to FAILED and stamps ProcessedAt.
func (r *ProcessingRecord) Fail(now time.Time) error {
	if r.CurrentStatus().IsTerminal() {
		return ErrInvalidTransition
	}
	return r.finish(StatusFailed, now)
}

// Complete moves a validated record to COMPLETED and stamps ProcessedAt.
func (r *ProcessingRecord) Complete(now time.Time) error {
	if r.CurrentStatus() != StatusValidated {
		return ErrInvalidTransition
	}
	return r.finish(StatusCompleted, now)
}

func (r *ProcessingRecord) finish(status ProcessingStatus, now time.Time) error {
	if r.ProcessedAt != nil {
		return ErrInvalidTransition
	}
	processedAt := now
	r.Status = status
	r.ProcessedAt = &processedAt
	r.UpdatedAt = now
	return nil
}
