package usecase

import (
	"context"
	"time"

	"github.com/allisson/orders/internal/metrics"
	processingDomain "github.com/allisson/orders/internal/processing/domain"
)

// processingUseCaseWithMetrics decorates ProcessingUseCase with metrics instrumentation.
type processingUseCaseWithMetrics struct {
	next    ProcessingUseCase
	metrics metrics.BusinessMetrics
}

// NewProcessingUseCaseWithMetrics wraps a ProcessingUseCase with metrics recording.
func NewProcessingUseCaseWithMetrics(useCase ProcessingUseCase, m metrics.BusinessMetrics) ProcessingUseCase {
	return &processingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Run records metrics for pipeline runs.
func (p *processingUseCaseWithMetrics) Run(
	ctx context.Context,
	orderID, notes string,
) (*processingDomain.ProcessingSnapshot, error) {
	start := time.Now()
	snapshot, err := p.next.Run(ctx, orderID, notes)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "processing", "order_process", status)
	p.metrics.RecordDuration(ctx, "processing", "order_process", time.Since(start), status)

	return snapshot, err
}

// GetStatus records metrics for processing status queries.
func (p *processingUseCaseWithMetrics) GetStatus(
	ctx context.Context,
	orderID string,
) (*processingDomain.ProcessingSnapshot, error) {
	start := time.Now()
	snapshot, err := p.next.GetStatus(ctx, orderID)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "processing", "order_status", status)
	p.metrics.RecordDuration(ctx, "processing", "order_status", time.Since(start), status)

	return snapshot, err
}
