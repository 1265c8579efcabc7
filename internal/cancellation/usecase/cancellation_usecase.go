package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
	apperrors "github.com/allisson/orders/internal/errors"
)

// cancellationUseCase implements the CancellationUseCase interface.
type cancellationUseCase struct {
	statusLookup OrderStatusLookup
	totalLookup  OrderTotalLookup
	publisher    EventPublisher
	logger       *slog.Logger
}

// Cancel validates the request, checks eligibility and emits the cancellation event.
func (c *cancellationUseCase) Cancel(
	ctx context.Context,
	input cancellationDomain.CancelOrderInput,
) (*cancellationDomain.CancellationOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cancellable, err := c.CanCancel(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if !cancellable {
		return nil, cancellationDomain.ErrOrderNotCancellable
	}

	refund, err := c.totalLookup.Total(ctx, input.OrderID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve refund amount")
	}

	outcome := cancellationDomain.NewCancellationOutcome(input.OrderID, refund, time.Now().UTC())

	c.publish(ctx, cancellationDomain.NewOrderCancelledEvent(input, outcome))

	c.logger.Info("order cancelled",
		slog.String("order_id", outcome.OrderID),
		slog.String("customer_id", input.CustomerID),
		slog.String("refund_amount", outcome.RefundAmount.StringFixed(2)),
	)

	return outcome, nil
}

// publish emits the cancellation event. Failures never fail the cancellation.
func (c *cancellationUseCase) publish(ctx context.Context, event cancellationDomain.OrderCancelledEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("failed to marshal order cancelled event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
		return
	}

	err = c.publisher.Publish(ctx, cancellationDomain.OrderCancelledTopic, event.OrderID, payload)
	if err != nil {
		c.logger.Error("failed to publish order cancelled event",
			slog.String("order_id", event.OrderID),
			slog.String("topic", cancellationDomain.OrderCancelledTopic),
			slog.Any("error", err),
		)
	}
}

// CanCancel resolves the order status and checks it against the cancellable set.
func (c *cancellationUseCase) CanCancel(ctx context.Context, orderID string) (bool, error) {
	status, err := c.statusLookup.Status(ctx, orderID)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to resolve order status")
	}
	return status.IsCancellable(), nil
}

// NewCancellationUseCase creates a new cancellation use case with the provided dependencies.
func NewCancellationUseCase(
	statusLookup OrderStatusLookup,
	totalLookup OrderTotalLookup,
	publisher EventPublisher,
	logger *slog.Logger,
) CancellationUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &cancellationUseCase{
		statusLookup: statusLookup,
		totalLookup:  totalLookup,
		publisher:    publisher,
		logger:       logger,
	}
}
