// Package mocks provides mock implementations of the processing use case ports for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	processingDomain "github.com/allisson/orders/internal/processing/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockProcessingRecordRepository is a mock implementation of ProcessingRecordRepository.
type MockProcessingRecordRepository struct {
	mock.Mock
}

// NewMockProcessingRecordRepository creates a mock whose expectations are asserted on cleanup.
func NewMockProcessingRecordRepository(t testingT) *MockProcessingRecordRepository {
	m := &MockProcessingRecordRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Exists mocks the Exists method.
func (m *MockProcessingRecordRepository) Exists(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

// Create mocks the Create method.
func (m *MockProcessingRecordRepository) Create(
	ctx context.Context,
	record *processingDomain.ProcessingRecord,
) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// GetByOrderID mocks the GetByOrderID method.
func (m *MockProcessingRecordRepository) GetByOrderID(
	ctx context.Context,
	orderID string,
) (*processingDomain.ProcessingRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processingDomain.ProcessingRecord), args.Error(1)
}

// MockInventoryChecker is a mock implementation of InventoryChecker.
type MockInventoryChecker struct {
	mock.Mock
}

// NewMockInventoryChecker creates a mock whose expectations are asserted on cleanup.
func NewMockInventoryChecker(t testingT) *MockInventoryChecker {
	m := &MockInventoryChecker{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Check mocks the Check method.
func (m *MockInventoryChecker) Check(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

// MockOrderValidator is a mock implementation of OrderValidator.
type MockOrderValidator struct {
	mock.Mock
}

// NewMockOrderValidator creates a mock whose expectations are asserted on cleanup.
func NewMockOrderValidator(t testingT) *MockOrderValidator {
	m := &MockOrderValidator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Validate mocks the Validate method.
func (m *MockOrderValidator) Validate(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

// MockProcessingUseCase is a mock implementation of ProcessingUseCase.
type MockProcessingUseCase struct {
	mock.Mock
}

// NewMockProcessingUseCase creates a mock whose expectations are asserted on cleanup.
func NewMockProcessingUseCase(t testingT) *MockProcessingUseCase {
	m := &MockProcessingUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Run mocks the Run method.
func (m *MockProcessingUseCase) Run(
	ctx context.Context,
	orderID, notes string,
) (*processingDomain.ProcessingSnapshot, error) {
	args := m.Called(ctx, orderID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processingDomain.ProcessingSnapshot), args.Error(1)
}

// GetStatus mocks the GetStatus method.
func (m *MockProcessingUseCase) GetStatus(
	ctx context.Context,
	orderID string,
) (*processingDomain.ProcessingSnapshot, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processingDomain.ProcessingSnapshot), args.Error(1)
}
