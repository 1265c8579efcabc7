package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
	"github.com/allisson/orders/internal/cancellation/http/dto"
	cancellationUsecase "github.com/allisson/orders/internal/cancellation/usecase"
)

// RunCancelOrder cancels an order and prints the refund outcome.
func RunCancelOrder(
	ctx context.Context,
	cancellationUseCase cancellationUsecase.CancellationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	input cancellationDomain.CancelOrderInput,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("cancelling order",
		slog.String("order_id", input.OrderID),
		slog.String("customer_id", input.CustomerID),
	)

	outcome, err := cancellationUseCase.Cancel(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	if format == FormatJSON {
		return outputJSON(writer, dto.MapOutcomeToResponse(outcome))
	}

	_, _ = fmt.Fprintln(writer, outcome.Message)
	_, _ = fmt.Fprintf(writer, "Order ID: %s\n", outcome.OrderID)
	_, _ = fmt.Fprintf(writer, "Status: %s\n", outcome.Status)
	_, _ = fmt.Fprintf(writer, "Refund: %s (%s)\n", outcome.RefundAmount.StringFixed(2), outcome.RefundStatus)
	_, _ = fmt.Fprintf(writer, "Cancelled at: %s\n", outcome.CancelledAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}

// RunCanCancel prints whether an order can still be cancelled.
func RunCanCancel(
	ctx context.Context,
	cancellationUseCase cancellationUsecase.CancellationUseCase,
	writer io.Writer,
	orderID string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	canCancel, err := cancellationUseCase.CanCancel(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to check cancellation eligibility: %w", err)
	}

	if format == FormatJSON {
		return outputJSON(writer, map[string]any{
			"orderId":   orderID,
			"canCancel": canCancel,
		})
	}

	if canCancel {
		_, _ = fmt.Fprintf(writer, "Order %s can be cancelled\n", orderID)
	} else {
		_, _ = fmt.Fprintf(writer, "Order %s cannot be cancelled\n", orderID)
	}
	return nil
}
