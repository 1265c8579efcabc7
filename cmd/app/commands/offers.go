package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	offersDomain "github.com/allisson/orders/internal/offers/domain"
	"github.com/allisson/orders/internal/offers/http/dto"
	offersUsecase "github.com/allisson/orders/internal/offers/usecase"
)

// RunListOffers prints the active offers. When orderAmount is set only the offers
// applicable to that amount and category are listed.
func RunListOffers(
	ctx context.Context,
	offerUseCase offersUsecase.OfferUseCase,
	writer io.Writer,
	orderAmount string,
	category string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	var (
		offers []offersDomain.Offer
		err    error
	)
	if orderAmount == "" {
		offers, err = offerUseCase.ListActive(ctx)
	} else {
		var amount decimal.Decimal
		amount, err = parseAmount(orderAmount)
		if err != nil {
			return err
		}
		offers, err = offerUseCase.Applicable(ctx, amount, category)
	}
	if err != nil {
		return fmt.Errorf("failed to list offers: %w", err)
	}

	if format == FormatJSON {
		return outputJSON(writer, dto.MapOffersToResponse(offers))
	}

	if len(offers) == 0 {
		_, _ = fmt.Fprintln(writer, "No offers found")
		return nil
	}
	for _, offer := range offers {
		outputOfferText(writer, offer)
	}
	return nil
}

// RunBestOffer prints the offer with the highest discount applicable to an order.
func RunBestOffer(
	ctx context.Context,
	offerUseCase offersUsecase.OfferUseCase,
	writer io.Writer,
	orderAmount string,
	category string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	amount, err := parseAmount(orderAmount)
	if err != nil {
		return err
	}

	best, found, err := offerUseCase.Best(ctx, amount, category)
	if err != nil {
		return fmt.Errorf("failed to find best offer: %w", err)
	}

	if format == FormatJSON {
		if !found {
			return outputJSON(writer, nil)
		}
		return outputJSON(writer, dto.MapOfferToResponse(*best))
	}

	if !found {
		_, _ = fmt.Fprintln(writer, "No applicable offer")
		return nil
	}
	outputOfferText(writer, *best)
	return nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid order amount: %s", value)
	}
	return amount, nil
}

func outputOfferText(writer io.Writer, offer offersDomain.Offer) {
	_, _ = fmt.Fprintf(writer, "%s  %-24s %3d%%  min %s  max %s  [%s]\n",
		offer.OfferID,
		offer.Title,
		offer.DiscountPercentage,
		offer.MinOrderAmount.StringFixed(2),
		offer.MaxDiscount.StringFixed(2),
		offer.Category,
	)
}
