// Package usecase implements the order cancellation workflow: eligibility gating,
// refund calculation and publication of the cancellation event.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
)

// OrderStatusLookup resolves the order-management status of an order.
type OrderStatusLookup interface {
	Status(ctx context.Context, orderID string) (cancellationDomain.OrderStatus, error)
}

// OrderTotalLookup resolves the amount refunded when an order is cancelled.
type OrderTotalLookup interface {
	Total(ctx context.Context, orderID string) (decimal.Decimal, error)
}

// EventPublisher delivers a keyed event payload to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

// CancellationUseCase defines the interface for the order cancellation workflow.
type CancellationUseCase interface {
	// Cancel cancels an eligible order, initiates its refund and publishes an
	// order.cancelled event. Publish failures are logged and never returned.
	Cancel(
		ctx context.Context,
		input cancellationDomain.CancelOrderInput,
	) (*cancellationDomain.CancellationOutcome, error)
	// CanCancel reports whether the order status still allows cancellation.
	CanCancel(ctx context.Context, orderID string) (bool, error)
}
