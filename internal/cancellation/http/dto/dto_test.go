package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
)

func TestCancelOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CancelOrderRequest
		wantErr bool
	}{
		{name: "valid", request: CancelOrderRequest{OrderID: "ORD-1", CustomerID: "C-1", Reason: "late"}},
		{name: "without reason", request: CancelOrderRequest{OrderID: "ORD-1", CustomerID: "C-1"}},
		{name: "missing order id", request: CancelOrderRequest{CustomerID: "C-1"}, wantErr: true},
		{name: "missing customer id", request: CancelOrderRequest{OrderID: "ORD-1"}, wantErr: true},
		{
			name:    "reason too long",
			request: CancelOrderRequest{OrderID: "ORD-1", CustomerID: "C-1", Reason: strings.Repeat("x", 501)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancelOrderRequest_ToInput(t *testing.T) {
	req := CancelOrderRequest{OrderID: "ORD-1", CustomerID: "C-1", Reason: "late"}

	assert.Equal(t, cancellationDomain.CancelOrderInput{OrderID: "ORD-1", CustomerID: "C-1", Reason: "late"}, req.ToInput())
}

func TestMapOutcomeToResponse(t *testing.T) {
	cancelledAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	outcome := cancellationDomain.NewCancellationOutcome("ORD-1", decimal.RequireFromString("99.99"), cancelledAt)

	body, err := json.Marshal(MapOutcomeToResponse(outcome))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"orderId": "ORD-1",
		"status": "CANCELLED",
		"message": "Order cancelled successfully",
		"cancelledAt": "2026-03-01T12:00:00Z",
		"refundAmount": 99.99,
		"refundStatus": "INITIATED"
	}`, string(body))
}
