package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/orders/internal/errors"
)

func TestOrderStatus_IsCancellable(t *testing.T) {
	cancellable := []OrderStatus{
		OrderStatusCreated, OrderStatusPendingPayment, OrderStatusPaymentConfirmed, OrderStatusProcessing,
	}
	for _, status := range cancellable {
		assert.True(t, status.IsCancellable(), status)
	}

	notCancellable := []OrderStatus{
		OrderStatusReadyToShip, OrderStatusShipped, OrderStatusOutForDelivery, OrderStatusDelivered,
		OrderStatusCancelled, OrderStatusReturnRequested, OrderStatusReturned, OrderStatusRefunded,
		OrderStatusFailed, OrderStatus(""),
	}
	for _, status := range notCancellable {
		assert.False(t, status.IsCancellable(), status)
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("SHIPPED")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	status, err = ParseOrderStatus(" pending_payment\n")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPendingPayment, status)

	_, err = ParseOrderStatus("LOST")
	assert.ErrorIs(t, err, ErrUnknownOrderStatus)
}

func TestCancelOrderInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   CancelOrderInput
		wantErr bool
	}{
		{name: "valid", input: CancelOrderInput{OrderID: "ORD-1", CustomerID: "C-1", Reason: "changed mind"}},
		{name: "reason optional", input: CancelOrderInput{OrderID: "ORD-1", CustomerID: "C-1"}},
		{name: "missing order id", input: CancelOrderInput{CustomerID: "C-1"}, wantErr: true},
		{name: "blank customer id", input: CancelOrderInput{OrderID: "ORD-1", CustomerID: " "}, wantErr: true},
		{
			name:    "reason too long",
			input:   CancelOrderInput{OrderID: "ORD-1", CustomerID: "C-1", Reason: strings.Repeat("r", 501)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestErrOrderNotCancellable(t *testing.T) {
	assert.True(t, apperrors.Is(ErrOrderNotCancellable, apperrors.ErrInvalidState))
	assert.Contains(t, ErrOrderNotCancellable.Error(), "order cannot be cancelled")
}

func TestNewOrderCancelledEvent(t *testing.T) {
	cancelledAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	outcome := NewCancellationOutcome("ORD-1", decimal.RequireFromString("99.99"), cancelledAt)

	assert.Equal(t, OrderStatusCancelled, outcome.Status)
	assert.Equal(t, RefundStatusInitiated, outcome.RefundStatus)
	assert.Equal(t, MessageCancelled, outcome.Message)

	event := NewOrderCancelledEvent(CancelOrderInput{OrderID: "ORD-1", CustomerID: "C-1", Reason: "late"}, outcome)

	body, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"orderId": "ORD-1",
		"customerId": "C-1",
		"reason": "late",
		"refundAmount": 99.99,
		"cancelledAt": 1772366400000,
		"status": "CANCELLED"
	}`, string(body))
}
