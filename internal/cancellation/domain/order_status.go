// Package domain defines the core domain models for order cancellation.
// Order statuses here describe the order lifecycle as seen by order management,
// which is distinct from the processing pipeline status.
package domain

import (
	"strings"

	"github.com/allisson/orders/internal/errors"
)

// OrderStatus is the order-management status of an order.
type OrderStatus string

const (
	OrderStatusCreated          OrderStatus = "CREATED"
	OrderStatusPendingPayment   OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaymentConfirmed OrderStatus = "PAYMENT_CONFIRMED"
	OrderStatusProcessing       OrderStatus = "PROCESSING"
	OrderStatusReadyToShip      OrderStatus = "READY_TO_SHIP"
	OrderStatusShipped          OrderStatus = "SHIPPED"
	OrderStatusOutForDelivery   OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered        OrderStatus = "DELIVERED"
	OrderStatusCancelled        OrderStatus = "CANCELLED"
	OrderStatusReturnRequested  OrderStatus = "RETURN_REQUESTED"
	OrderStatusReturned         OrderStatus = "RETURNED"
	OrderStatusRefunded         OrderStatus = "REFUNDED"
	OrderStatusFailed           OrderStatus = "FAILED"
)

var knownOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusCreated:          {},
	OrderStatusPendingPayment:   {},
	OrderStatusPaymentConfirmed: {},
	OrderStatusProcessing:       {},
	OrderStatusReadyToShip:      {},
	OrderStatusShipped:          {},
	OrderStatusOutForDelivery:   {},
	OrderStatusDelivered:        {},
	OrderStatusCancelled:        {},
	OrderStatusReturnRequested:  {},
	OrderStatusReturned:         {},
	OrderStatusRefunded:         {},
	OrderStatusFailed:           {},
}

// ParseOrderStatus converts a status name into an OrderStatus. Matching ignores case
// and surrounding whitespace.
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := knownOrderStatuses[status]; !ok {
		return "", errors.Wrapf(ErrUnknownOrderStatus, "%q", value)
	}
	return status, nil
}

// IsCancellable reports whether an order in this status may still be cancelled.
// Only orders that have not reached fulfilment qualify.
func (s OrderStatus) IsCancellable() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPendingPayment, OrderStatusPaymentConfirmed, OrderStatusProcessing:
		return true
	default:
		return false
	}
}
