package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/orders/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(errors.New("orderId: cannot be blank."))
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "orderId: cannot be blank.")
	})
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "valid", value: "ORD-1", shouldErr: false},
		{name: "spaces only", value: "   ", shouldErr: true},
		{name: "tabs and newlines", value: "\t\n", shouldErr: true},
		{name: "empty is left to Required", value: "", shouldErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, NotBlank)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNonNegativeDecimal(t *testing.T) {
	negative := decimal.RequireFromString("-0.01")

	assert.NoError(t, validation.Validate(decimal.Zero, NonNegativeDecimal))
	assert.NoError(t, validation.Validate(decimal.RequireFromString("100.00"), NonNegativeDecimal))
	assert.Error(t, validation.Validate(negative, NonNegativeDecimal))
	assert.Error(t, validation.Validate(&negative, NonNegativeDecimal))
	assert.Error(t, validation.Validate(12.5, NonNegativeDecimal))
}
