package usecase

import (
	"context"
	"time"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
	"github.com/allisson/orders/internal/metrics"
)

// cancellationUseCaseWithMetrics decorates CancellationUseCase with metrics instrumentation.
type cancellationUseCaseWithMetrics struct {
	next    CancellationUseCase
	metrics metrics.BusinessMetrics
}

// NewCancellationUseCaseWithMetrics wraps a CancellationUseCase with metrics recording.
func NewCancellationUseCaseWithMetrics(
	useCase CancellationUseCase,
	m metrics.BusinessMetrics,
) CancellationUseCase {
	return &cancellationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Cancel records metrics for cancellation requests.
func (c *cancellationUseCaseWithMetrics) Cancel(
	ctx context.Context,
	input cancellationDomain.CancelOrderInput,
) (*cancellationDomain.CancellationOutcome, error) {
	start := time.Now()
	outcome, err := c.next.Cancel(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cancellation", "order_cancel", status)
	c.metrics.RecordDuration(ctx, "cancellation", "order_cancel", time.Since(start), status)

	return outcome, err
}

// CanCancel records metrics for eligibility checks.
func (c *cancellationUseCaseWithMetrics) CanCancel(ctx context.Context, orderID string) (bool, error) {
	start := time.Now()
	cancellable, err := c.next.CanCancel(ctx, orderID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cancellation", "order_can_cancel", status)
	c.metrics.RecordDuration(ctx, "cancellation", "order_can_cancel", time.Since(start), status)

	return cancellable, err
}
