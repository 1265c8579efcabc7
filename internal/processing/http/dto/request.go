// Package dto provides data transfer objects for the order processing HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/orders/internal/validation"
)

// ProcessOrderRequest contains the parameters for running the processing pipeline.
type ProcessOrderRequest struct {
	OrderID         string `json:"orderId"`
	ProcessingNotes string `json:"processingNotes"`
}

// Validate checks if the process order request is valid.
func (r *ProcessOrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OrderID,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, 255),
		),
		validation.Field(&r.ProcessingNotes,
			validation.RuneLength(0, 2000),
		),
	)
}
