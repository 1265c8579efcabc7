package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
)

// DefaultRefundAmount is the refund issued by the static total lookup.
var DefaultRefundAmount = decimal.RequireFromString("99.99")

// StaticOrderStatusLookup reports the same status for every order. It stands in
// for an order-management system.
type StaticOrderStatusLookup struct {
	OrderStatus cancellationDomain.OrderStatus
}

// Status returns the configured status.
func (s StaticOrderStatusLookup) Status(_ context.Context, _ string) (cancellationDomain.OrderStatus, error) {
	return s.OrderStatus, nil
}

// NewStaticOrderStatusLookup returns a lookup that reports every order as PROCESSING.
func NewStaticOrderStatusLookup() StaticOrderStatusLookup {
	return StaticOrderStatusLookup{OrderStatus: cancellationDomain.OrderStatusProcessing}
}

// StaticOrderTotalLookup reports the same refundable total for every order.
type StaticOrderTotalLookup struct {
	Amount decimal.Decimal
}

// Total returns the configured amount.
func (s StaticOrderTotalLookup) Total(_ context.Context, _ string) (decimal.Decimal, error) {
	return s.Amount, nil
}

// NewStaticOrderTotalLookup returns a lookup with the default refund amount.
func NewStaticOrderTotalLookup() StaticOrderTotalLookup {
	return StaticOrderTotalLookup{Amount: DefaultRefundAmount}
}
