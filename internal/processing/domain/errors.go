package domain

import (
	"github.com/allisson/orders/internal/errors"
)

// Processing-specific error definitions.
var (
	// ErrOrderAlreadyProcessed indicates a processing record already exists for the order.
	ErrOrderAlreadyProcessed = errors.Wrap(errors.ErrConflict, "order already processed")

	// ErrProcessingRecordNotFound indicates no processing record exists for the order.
	ErrProcessingRecordNotFound = errors.Wrap(errors.ErrNotFound, "processing record not found")

	// ErrInvalidTransition indicates a pipeline step was applied out of order.
	ErrInvalidTransition = errors.Wrap(errors.ErrInvalidState, "invalid processing status transition")
)
