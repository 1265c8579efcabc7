// Package mocks provides mock implementations of the offer use case for testing.
package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	offersDomain "github.com/allisson/orders/internal/offers/domain"
)

// MockOfferUseCase is a mock implementation of OfferUseCase.
type MockOfferUseCase struct {
	mock.Mock
}

// NewMockOfferUseCase creates a mock whose expectations are asserted on cleanup.
func NewMockOfferUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOfferUseCase {
	m := &MockOfferUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ListActive mocks the ListActive method.
func (m *MockOfferUseCase) ListActive(ctx context.Context) ([]offersDomain.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]offersDomain.Offer), args.Error(1)
}

// Applicable mocks the Applicable method.
func (m *MockOfferUseCase) Applicable(
	ctx context.Context,
	amount decimal.Decimal,
	category string,
) ([]offersDomain.Offer, error) {
	args := m.Called(ctx, amount, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]offersDomain.Offer), args.Error(1)
}

// Best mocks the Best method.
func (m *MockOfferUseCase) Best(
	ctx context.Context,
	amount decimal.Decimal,
	category string,
) (*offersDomain.Offer, bool, error) {
	args := m.Called(ctx, amount, category)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*offersDomain.Offer), args.Bool(1), args.Error(2)
}
