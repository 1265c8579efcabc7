package app

import (
	"fmt"

	offersHTTP "github.com/allisson/orders/internal/offers/http"
	offersUsecase "github.com/allisson/orders/internal/offers/usecase"
)

// OfferUseCase returns the offer use case instance.
func (c *Container) OfferUseCase() (offersUsecase.OfferUseCase, error) {
	var err error
	c.offerUseCaseInit.Do(func() {
		c.offerUseCase, err = c.initOfferUseCase()
		if err != nil {
			c.initErrors["offerUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["offerUseCase"]; exists {
		return nil, storedErr
	}
	return c.offerUseCase, nil
}

// OfferHandler returns the offer HTTP handler instance.
func (c *Container) OfferHandler() (*offersHTTP.OfferHandler, error) {
	var err error
	c.offerHandlerInit.Do(func() {
		useCase, useCaseErr := c.OfferUseCase()
		if useCaseErr != nil {
			err = fmt.Errorf("failed to get offer use case for offer handler: %w", useCaseErr)
			c.initErrors["offerHandler"] = err
			return
		}
		c.offerHandler = offersHTTP.NewOfferHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["offerHandler"]; exists {
		return nil, storedErr
	}
	return c.offerHandler, nil
}

// initOfferUseCase creates the offer use case. The catalog is in memory and needs no database.
func (c *Container) initOfferUseCase() (offersUsecase.OfferUseCase, error) {
	baseUseCase := offersUsecase.NewOfferUseCase(nil, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for offer use case: %w", err)
		}
		return offersUsecase.NewOfferUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
