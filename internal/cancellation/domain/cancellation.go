package domain

import (
	"encoding/json"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	customValidation "github.com/allisson/orders/internal/validation"
)

// OrderCancelledTopic is the topic cancellation events are published to.
const OrderCancelledTopic = "order.cancelled"

// RefundStatusInitiated is the refund status of a successful cancellation.
const RefundStatusInitiated = "INITIATED"

// MessageCancelled is returned with a successful cancellation outcome.
const MessageCancelled = "Order cancelled successfully"

// CancelOrderInput contains the parameters of a cancellation request.
type CancelOrderInput struct {
	OrderID    string
	CustomerID string
	Reason     string
}

// Validate checks if the cancellation request is valid.
func (i *CancelOrderInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.OrderID,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, 255),
		),
		validation.Field(&i.CustomerID,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, 255),
		),
		validation.Field(&i.Reason,
			validation.RuneLength(0, 500),
		),
	)
	return customValidation.WrapValidationError(err)
}

// CancellationOutcome is the result of a successful cancellation.
type CancellationOutcome struct {
	OrderID      string
	Status       OrderStatus
	Message      string
	CancelledAt  time.Time
	RefundAmount decimal.Decimal
	RefundStatus string
}

// NewCancellationOutcome builds the outcome of a cancelled order with an initiated refund.
func NewCancellationOutcome(orderID string, refund decimal.Decimal, cancelledAt time.Time) *CancellationOutcome {
	return &CancellationOutcome{
		OrderID:      orderID,
		Status:       OrderStatusCancelled,
		Message:      MessageCancelled,
		CancelledAt:  cancelledAt,
		RefundAmount: refund,
		RefundStatus: RefundStatusInitiated,
	}
}

// OrderCancelledEvent is the payload published on OrderCancelledTopic.
type OrderCancelledEvent struct {
	OrderID      string      `json:"orderId"`
	CustomerID   string      `json:"customerId"`
	Reason       string      `json:"reason"`
	RefundAmount json.Number `json:"refundAmount"`
	CancelledAt  int64       `json:"cancelledAt"`
	Status       OrderStatus `json:"status"`
}

// NewOrderCancelledEvent builds the event for a cancellation outcome.
func NewOrderCancelledEvent(input CancelOrderInput, outcome *CancellationOutcome) OrderCancelledEvent {
	return OrderCancelledEvent{
		OrderID:      outcome.OrderID,
		CustomerID:   input.CustomerID,
		Reason:       input.Reason,
		RefundAmount: json.Number(outcome.RefundAmount.String()),
		CancelledAt:  outcome.CancelledAt.UnixMilli(),
		Status:       outcome.Status,
	}
}
