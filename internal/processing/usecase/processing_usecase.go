package usecase

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/orders/internal/errors"
	processingDomain "github.com/allisson/orders/internal/processing/domain"
	customValidation "github.com/allisson/orders/internal/validation"
)

// maxOrderIDLength matches the width of the order_id column.
const maxOrderIDLength = 255

// processingUseCase implements the ProcessingUseCase interface.
type processingUseCase struct {
	repo             ProcessingRecordRepository
	inventoryChecker InventoryChecker
	orderValidator   OrderValidator
	logger           *slog.Logger
}

// Run executes the inventory and validation steps and persists the terminal record.
func (p *processingUseCase) Run(
	ctx context.Context,
	orderID, notes string,
) (*processingDomain.ProcessingSnapshot, error) {
	if err := validateOrderID(orderID); err != nil {
		return nil, err
	}

	exists, err := p.repo.Exists(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, processingDomain.ErrOrderAlreadyProcessed
	}

	record := processingDomain.NewProcessingRecord(orderID, notes, processingDomain.SystemActor, now())

	message, err := p.advance(ctx, record)
	if err != nil {
		return nil, err
	}

	// The unique constraint on order_id rejects a concurrent run that passed the check above.
	if err := p.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	p.logger.Info("order processed",
		slog.String("order_id", record.OrderID),
		slog.String("status", string(record.Status)),
	)

	return processingDomain.NewSnapshot(record, message), nil
}

// advance moves the record through the pipeline steps up to its terminal status.
func (p *processingUseCase) advance(
	ctx context.Context,
	record *processingDomain.ProcessingRecord,
) (string, error) {
	available, err := p.inventoryChecker.Check(ctx, record.OrderID)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to check inventory")
	}
	if err := record.RecordInventory(available, now()); err != nil {
		return "", err
	}

	if !available {
		if err := record.Fail(now()); err != nil {
			return "", err
		}
		return processingDomain.MessageInventoryNotAvailable, nil
	}

	passed, err := p.orderValidator.Validate(ctx, record.OrderID)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to validate order")
	}
	if err := record.RecordValidation(passed, now()); err != nil {
		return "", err
	}

	if !passed {
		if err := record.Fail(now()); err != nil {
			return "", err
		}
		return processingDomain.MessageValidationFailed, nil
	}

	if err := record.Complete(now()); err != nil {
		return "", err
	}
	return processingDomain.MessageProcessed, nil
}

// GetStatus loads the processing record of an order.
func (p *processingUseCase) GetStatus(
	ctx context.Context,
	orderID string,
) (*processingDomain.ProcessingSnapshot, error) {
	if err := validateOrderID(orderID); err != nil {
		return nil, err
	}

	record, err := p.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return processingDomain.NewSnapshot(record, ""), nil
}

func validateOrderID(orderID string) error {
	err := validation.Validate(orderID,
		validation.Required,
		customValidation.NotBlank,
		validation.RuneLength(1, maxOrderIDLength),
	)
	if err != nil {
		return customValidation.WrapValidationError(apperrors.Wrap(err, "orderId"))
	}
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}

// NewProcessingUseCase creates a new processing use case with the provided dependencies.
func NewProcessingUseCase(
	repo ProcessingRecordRepository,
	inventoryChecker InventoryChecker,
	orderValidator OrderValidator,
	logger *slog.Logger,
) ProcessingUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &processingUseCase{
		repo:             repo,
		inventoryChecker: inventoryChecker,
		orderValidator:   orderValidator,
		logger:           logger,
	}
}
