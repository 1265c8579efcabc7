package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	processingDomain "github.com/allisson/orders/internal/processing/domain"
	"github.com/allisson/orders/internal/processing/http/dto"
	processingUsecase "github.com/allisson/orders/internal/processing/usecase"
)

// RunProcessOrder runs the processing pipeline once for an order and prints the snapshot.
//
// Requirements: Database must be migrated and accessible.
func RunProcessOrder(
	ctx context.Context,
	processingUseCase processingUsecase.ProcessingUseCase,
	logger *slog.Logger,
	writer io.Writer,
	orderID string,
	notes string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("processing order", slog.String("order_id", orderID))

	snapshot, err := processingUseCase.Run(ctx, orderID, notes)
	if err != nil {
		return fmt.Errorf("failed to process order: %w", err)
	}

	if err := outputSnapshot(writer, snapshot, format); err != nil {
		return err
	}

	logger.Info("order processed",
		slog.String("order_id", snapshot.OrderID),
		slog.String("status", string(snapshot.Status)),
	)
	return nil
}

// RunProcessingStatus prints the stored processing snapshot of an order.
func RunProcessingStatus(
	ctx context.Context,
	processingUseCase processingUsecase.ProcessingUseCase,
	writer io.Writer,
	orderID string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	snapshot, err := processingUseCase.GetStatus(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to get processing status: %w", err)
	}

	return outputSnapshot(writer, snapshot, format)
}

func outputSnapshot(writer io.Writer, snapshot *processingDomain.ProcessingSnapshot, format string) error {
	if format == FormatJSON {
		return outputJSON(writer, dto.MapSnapshotToResponse(snapshot))
	}

	_, _ = fmt.Fprintf(writer, "Order ID: %s\n", snapshot.OrderID)
	_, _ = fmt.Fprintf(writer, "Status: %s\n", snapshot.Status)
	_, _ = fmt.Fprintf(writer, "Inventory available: %s\n", formatOptional(snapshot.InventoryAvailable))
	_, _ = fmt.Fprintf(writer, "Inventory check: %s\n", formatOptional(snapshot.InventoryCheck))
	_, _ = fmt.Fprintf(writer, "Validation passed: %s\n", formatOptional(snapshot.ValidationPassed))
	_, _ = fmt.Fprintf(writer, "Validation result: %s\n", formatOptional(snapshot.ValidationResult))
	if snapshot.ProcessingNotes != "" {
		_, _ = fmt.Fprintf(writer, "Notes: %s\n", snapshot.ProcessingNotes)
	}
	if snapshot.ProcessedAt != nil {
		_, _ = fmt.Fprintf(writer, "Processed at: %s\n", snapshot.ProcessedAt.Format("2006-01-02 15:04:05 MST"))
	}
	if snapshot.Message != "" {
		_, _ = fmt.Fprintln(writer, snapshot.Message)
	}
	return nil
}
