package usecase

import "context"

// StaticInventoryChecker is an InventoryChecker with a fixed answer. It stands in
// for a stock system.
type StaticInventoryChecker struct {
	Available bool
}

// Check returns the configured availability.
func (s StaticInventoryChecker) Check(_ context.Context, _ string) (bool, error) {
	return s.Available, nil
}

// NewStaticInventoryChecker returns a checker that reports every order as in stock.
func NewStaticInventoryChecker() StaticInventoryChecker {
	return StaticInventoryChecker{Available: true}
}

// StaticOrderValidator is an OrderValidator with a fixed answer.
type StaticOrderValidator struct {
	Passed bool
}

// Validate returns the configured validation result.
func (s StaticOrderValidator) Validate(_ context.Context, _ string) (bool, error) {
	return s.Passed, nil
}

// NewStaticOrderValidator returns a validator that passes every order.
func NewStaticOrderValidator() StaticOrderValidator {
	return StaticOrderValidator{Passed: true}
}
