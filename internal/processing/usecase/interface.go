// Package usecase defines the interfaces and implementations for the order processing pipeline.
// The pipeline runs an inventory check and an order validation for an order and persists
// a single processing record holding the outcome.
package usecase

import (
	"context"

	processingDomain "github.com/allisson/orders/internal/processing/domain"
)

// ProcessingRecordRepository defines the interface for processing record persistence.
// Create is an atomic insert-if-absent: a duplicate order id returns
// processingDomain.ErrOrderAlreadyProcessed.
type ProcessingRecordRepository interface {
	Exists(ctx context.Context, orderID string) (bool, error)
	Create(ctx context.Context, record *processingDomain.ProcessingRecord) error
	GetByOrderID(ctx context.Context, orderID string) (*processingDomain.ProcessingRecord, error)
}

// InventoryChecker reports whether every item of an order is in stock.
type InventoryChecker interface {
	Check(ctx context.Context, orderID string) (bool, error)
}

// OrderValidator reports whether an order passes business validation.
type OrderValidator interface {
	Validate(ctx context.Context, orderID string) (bool, error)
}

// ProcessingUseCase defines the interface for the order processing pipeline.
type ProcessingUseCase interface {
	// Run executes the pipeline once for the order and returns the resulting snapshot.
	// A second run for the same order id fails with ErrOrderAlreadyProcessed.
	Run(ctx context.Context, orderID, notes string) (*processingDomain.ProcessingSnapshot, error)
	// GetStatus returns the snapshot of an existing record with an empty message.
	GetStatus(ctx context.Context, orderID string) (*processingDomain.ProcessingSnapshot, error)
}
