// Package mocks provides mock implementations of the cancellation use case ports for testing.
package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockOrderStatusLookup is a mock implementation of OrderStatusLookup.
type MockOrderStatusLookup struct {
	mock.Mock
}

// NewMockOrderStatusLookup creates a mock whose expectations are asserted on cleanup.
func NewMockOrderStatusLookup(t testingT) *MockOrderStatusLookup {
	m := &MockOrderStatusLookup{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Status mocks the Status method.
func (m *MockOrderStatusLookup) Status(ctx context.Context, orderID string) (cancellationDomain.OrderStatus, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(cancellationDomain.OrderStatus), args.Error(1)
}

// MockOrderTotalLookup is a mock implementation of OrderTotalLookup.
type MockOrderTotalLookup struct {
	mock.Mock
}

// NewMockOrderTotalLookup creates a mock whose expectations are asserted on cleanup.
func NewMockOrderTotalLookup(t testingT) *MockOrderTotalLookup {
	m := &MockOrderTotalLookup{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Total mocks the Total method.
func (m *MockOrderTotalLookup) Total(ctx context.Context, orderID string) (decimal.Decimal, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock whose expectations are asserted on cleanup.
func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Publish mocks the Publish method.
func (m *MockEventPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}

// MockCancellationUseCase is a mock implementation of CancellationUseCase.
type MockCancellationUseCase struct {
	mock.Mock
}

// NewMockCancellationUseCase creates a mock whose expectations are asserted on cleanup.
func NewMockCancellationUseCase(t testingT) *MockCancellationUseCase {
	m := &MockCancellationUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Cancel mocks the Cancel method.
func (m *MockCancellationUseCase) Cancel(
	ctx context.Context,
	input cancellationDomain.CancelOrderInput,
) (*cancellationDomain.CancellationOutcome, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cancellationDomain.CancellationOutcome), args.Error(1)
}

// CanCancel mocks the CanCancel method.
func (m *MockCancellationUseCase) CanCancel(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}
