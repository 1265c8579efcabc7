package domain

import (
	"github.com/allisson/orders/internal/errors"
)

// Cancellation-specific error definitions.
var (
	// ErrOrderNotCancellable indicates the order status no longer allows cancellation.
	ErrOrderNotCancellable = errors.Wrap(
		errors.ErrInvalidState,
		"order cannot be cancelled, it may have already been shipped or delivered",
	)

	// ErrUnknownOrderStatus indicates a status source returned an unrecognised status.
	ErrUnknownOrderStatus = errors.New("unknown order status")
)
