// Package usecase implements offer listing and matching on top of the offer catalog.
package usecase

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	offersDomain "github.com/allisson/orders/internal/offers/domain"
	customValidation "github.com/allisson/orders/internal/validation"
)

// OfferUseCase defines the interface for offer listing and matching.
type OfferUseCase interface {
	// ListActive returns the active offers of the catalog in declaration order.
	ListActive(ctx context.Context) ([]offersDomain.Offer, error)
	// Applicable returns the offers that apply to an order amount and category.
	Applicable(ctx context.Context, amount decimal.Decimal, category string) ([]offersDomain.Offer, error)
	// Best returns the applicable offer with the highest discount. found is false
	// when nothing applies.
	Best(ctx context.Context, amount decimal.Decimal, category string) (offer *offersDomain.Offer, found bool, err error)
}

// Clock returns the current time.
type Clock func() time.Time

type offerUseCase struct {
	clock  Clock
	logger *slog.Logger
}

func (o *offerUseCase) ListActive(_ context.Context) ([]offersDomain.Offer, error) {
	catalog := offersDomain.Catalog(o.clock())

	active := make([]offersDomain.Offer, 0, len(catalog))
	for _, offer := range catalog {
		if offer.Active {
			active = append(active, offer)
		}
	}

	o.logger.Debug("listed active offers", slog.Int("count", len(active)))
	return active, nil
}

func (o *offerUseCase) Applicable(
	ctx context.Context,
	amount decimal.Decimal,
	category string,
) ([]offersDomain.Offer, error) {
	err := validation.Errors{
		"orderAmount": validation.Validate(amount, customValidation.NonNegativeDecimal),
	}.Filter()
	if err != nil {
		return nil, customValidation.WrapValidationError(err)
	}
	if category == "" {
		category = offersDomain.CategoryAll
	}

	offers, err := o.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	applicable := offersDomain.Applicable(offers, amount, category)
	o.logger.Debug("matched applicable offers",
		slog.String("order_amount", amount.String()),
		slog.String("category", category),
		slog.Int("count", len(applicable)),
	)
	return applicable, nil
}

func (o *offerUseCase) Best(
	ctx context.Context,
	amount decimal.Decimal,
	category string,
) (*offersDomain.Offer, bool, error) {
	applicable, err := o.Applicable(ctx, amount, category)
	if err != nil {
		return nil, false, err
	}

	best, found := offersDomain.Best(applicable)
	if !found {
		return nil, false, nil
	}
	return &best, true, nil
}

// NewOfferUseCase creates a new offer use case. A nil clock uses the UTC wall clock.
func NewOfferUseCase(clock Clock, logger *slog.Logger) OfferUseCase {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &offerUseCase{
		clock:  clock,
		logger: logger,
	}
}
