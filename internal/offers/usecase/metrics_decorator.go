package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/allisson/orders/internal/metrics"
	offersDomain "github.com/allisson/orders/internal/offers/domain"
)

// offerUseCaseWithMetrics decorates OfferUseCase with metrics instrumentation.
type offerUseCaseWithMetrics struct {
	next    OfferUseCase
	metrics metrics.BusinessMetrics
}

// NewOfferUseCaseWithMetrics wraps an OfferUseCase with metrics recording.
func NewOfferUseCaseWithMetrics(useCase OfferUseCase, m metrics.BusinessMetrics) OfferUseCase {
	return &offerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (o *offerUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "offers", operation, status)
	o.metrics.RecordDuration(ctx, "offers", operation, time.Since(start), status)
}

// ListActive records metrics for catalog listings.
func (o *offerUseCaseWithMetrics) ListActive(ctx context.Context) ([]offersDomain.Offer, error) {
	start := time.Now()
	offers, err := o.next.ListActive(ctx)
	o.record(ctx, "offer_list", start, err)
	return offers, err
}

// Applicable records metrics for applicable offer queries.
func (o *offerUseCaseWithMetrics) Applicable(
	ctx context.Context,
	amount decimal.Decimal,
	category string,
) ([]offersDomain.Offer, error) {
	start := time.Now()
	offers, err := o.next.Applicable(ctx, amount, category)
	o.record(ctx, "offer_applicable", start, err)
	return offers, err
}

// Best records metrics for best offer queries.
func (o *offerUseCaseWithMetrics) Best(
	ctx context.Context,
	amount decimal.Decimal,
	category string,
) (*offersDomain.Offer, bool, error) {
	start := time.Now()
	offer, found, err := o.next.Best(ctx, amount, category)
	o.record(ctx, "offer_best", start, err)
	return offer, found, err
}
