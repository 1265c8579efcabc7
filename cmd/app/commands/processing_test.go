package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	processingDomain "github.com/allisson/orders/internal/processing/domain"
	processingMocks "github.com/allisson/orders/internal/processing/usecase/mocks"
)

func newCompletedSnapshot() *processingDomain.ProcessingSnapshot {
	available := true
	inventoryNote := processingDomain.InventoryAvailableNote
	passed := true
	processedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &processingDomain.ProcessingSnapshot{
		OrderID:            "order-1",
		Status:             processingDomain.StatusCompleted,
		InventoryAvailable: &available,
		InventoryCheck:     &inventoryNote,
		ValidationPassed:   &passed,
		ProcessingNotes:    "rush",
		ProcessedAt:        &processedAt,
		Message:            "Order processed successfully",
	}
}

func TestRunProcessOrder(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := processingMocks.NewMockProcessingUseCase(t)
		mockUseCase.On("Run", ctx, "order-1", "rush").Return(newCompletedSnapshot(), nil)

		var out bytes.Buffer
		err := RunProcessOrder(ctx, mockUseCase, logger, &out, "order-1", "rush", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Order ID: order-1")
		require.Contains(t, out.String(), "Status: COMPLETED")
		require.Contains(t, out.String(), "Validation result: -")
		require.Contains(t, out.String(), "Processed at: 2026-03-01 12:00:00 UTC")
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := processingMocks.NewMockProcessingUseCase(t)
		mockUseCase.On("Run", ctx, "order-1", "").Return(newCompletedSnapshot(), nil)

		var out bytes.Buffer
		err := RunProcessOrder(ctx, mockUseCase, logger, &out, "order-1", "", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"orderId": "order-1"`)
		require.Contains(t, out.String(), `"status": "COMPLETED"`)
		require.Contains(t, out.String(), `"validationResult": null`)
	})

	t.Run("already-processed", func(t *testing.T) {
		mockUseCase := processingMocks.NewMockProcessingUseCase(t)
		mockUseCase.On("Run", ctx, "order-1", "").Return(nil, processingDomain.ErrOrderAlreadyProcessed)

		err := RunProcessOrder(ctx, mockUseCase, logger, &bytes.Buffer{}, "order-1", "", "text")

		require.ErrorIs(t, err, processingDomain.ErrOrderAlreadyProcessed)
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := processingMocks.NewMockProcessingUseCase(t)

		err := RunProcessOrder(ctx, mockUseCase, logger, &bytes.Buffer{}, "order-1", "", "yaml")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format: yaml")
	})
}

func TestRunProcessingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		snapshot := newCompletedSnapshot()
		snapshot.Message = ""
		mockUseCase := processingMocks.NewMockProcessingUseCase(t)
		mockUseCase.On("GetStatus", ctx, "order-1").Return(snapshot, nil)

		var out bytes.Buffer
		err := RunProcessingStatus(ctx, mockUseCase, &out, "order-1", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Inventory available: true")
		require.NotContains(t, out.String(), "Order processed successfully")
	})

	t.Run("not-found", func(t *testing.T) {
		mockUseCase := processingMocks.NewMockProcessingUseCase(t)
		mockUseCase.On("GetStatus", ctx, "missing").Return(nil, processingDomain.ErrProcessingRecordNotFound)

		err := RunProcessingStatus(ctx, mockUseCase, &bytes.Buffer{}, "missing", "json")

		require.ErrorIs(t, err, processingDomain.ErrProcessingRecordNotFound)
	})
}
