package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	outboxUsecase "github.com/allisson/orders/internal/outbox/usecase"
)

// RunOutboxRelay delivers pending outbox events to the broker. With once set a single
// batch is processed; otherwise the relay polls until ctx is cancelled.
//
// Requirements: Database must be migrated and accessible.
func RunOutboxRelay(ctx context.Context, outboxUseCase outboxUsecase.UseCase, logger *slog.Logger, once bool) error {
	if once {
		logger.Info("processing one outbox batch")
		if err := outboxUseCase.ProcessEvents(ctx); err != nil {
			return fmt.Errorf("failed to process outbox events: %w", err)
		}
		return nil
	}

	logger.Info("starting outbox relay")
	err := outboxUseCase.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("outbox relay stopped: %w", err)
	}

	logger.Info("outbox relay stopped")
	return nil
}
