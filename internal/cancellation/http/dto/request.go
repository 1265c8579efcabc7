// Package dto provides data transfer objects for the order cancellation HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
	customValidation "github.com/allisson/orders/internal/validation"
)

// CancelOrderRequest contains the parameters for cancelling an order.
type CancelOrderRequest struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	Reason     string `json:"reason"`
}

// Validate checks if the cancel order request is valid.
func (r *CancelOrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OrderID,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, 255),
		),
		validation.Field(&r.CustomerID,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, 255),
		),
		validation.Field(&r.Reason,
			validation.RuneLength(0, 500),
		),
	)
}

// ToInput converts the request into the use case input.
func (r *CancelOrderRequest) ToInput() cancellationDomain.CancelOrderInput {
	return cancellationDomain.CancelOrderInput{
		OrderID:    r.OrderID,
		CustomerID: r.CustomerID,
		Reason:     r.Reason,
	}
}
