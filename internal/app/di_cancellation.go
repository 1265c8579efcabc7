package app

import (
	"fmt"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
	cancellationHTTP "github.com/allisson/orders/internal/cancellation/http"
	cancellationRepository "github.com/allisson/orders/internal/cancellation/repository"
	cancellationUsecase "github.com/allisson/orders/internal/cancellation/usecase"
	"github.com/allisson/orders/internal/config"
)

// OrderStatusLookup returns the order status source selected by ORDER_STATUS_SOURCE.
func (c *Container) OrderStatusLookup() (cancellationUsecase.OrderStatusLookup, error) {
	var err error
	c.orderStatusLookupInit.Do(func() {
		c.orderStatusLookup, err = c.initOrderStatusLookup()
		if err != nil {
			c.initErrors["orderStatusLookup"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderStatusLookup"]; exists {
		return nil, storedErr
	}
	return c.orderStatusLookup, nil
}

// CancellationUseCase returns the order cancellation use case instance.
func (c *Container) CancellationUseCase() (cancellationUsecase.CancellationUseCase, error) {
	var err error
	c.cancellationUseCaseInit.Do(func() {
		c.cancellationUseCase, err = c.initCancellationUseCase()
		if err != nil {
			c.initErrors["cancellationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cancellationUseCase"]; exists {
		return nil, storedErr
	}
	return c.cancellationUseCase, nil
}

// CancellationHandler returns the cancellation HTTP handler instance.
func (c *Container) CancellationHandler() (*cancellationHTTP.CancellationHandler, error) {
	var err error
	c.cancellationHandlerInit.Do(func() {
		c.cancellationHandler, err = c.initCancellationHandler()
		if err != nil {
			c.initErrors["cancellationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cancellationHandler"]; exists {
		return nil, storedErr
	}
	return c.cancellationHandler, nil
}

// initOrderStatusLookup creates the static or Redis-backed order status lookup.
func (c *Container) initOrderStatusLookup() (cancellationUsecase.OrderStatusLookup, error) {
	defaultStatus, err := cancellationDomain.ParseOrderStatus(c.config.OrderStatusDefault)
	if err != nil {
		return nil, fmt.Errorf("invalid ORDER_STATUS_DEFAULT: %w", err)
	}

	switch c.config.OrderStatusSource {
	case config.OrderStatusSourceStatic:
		return cancellationUsecase.StaticOrderStatusLookup{OrderStatus: defaultStatus}, nil
	case config.OrderStatusSourceRedis:
		return cancellationRepository.NewRedisOrderStatusLookup(c.RedisClient(), defaultStatus), nil
	default:
		return nil, fmt.Errorf("unsupported order status source: %s", c.config.OrderStatusSource)
	}
}

// initCancellationUseCase creates the cancellation use case with its lookups and publisher.
func (c *Container) initCancellationUseCase() (cancellationUsecase.CancellationUseCase, error) {
	statusLookup, err := c.OrderStatusLookup()
	if err != nil {
		return nil, fmt.Errorf("failed to get order status lookup for cancellation use case: %w", err)
	}

	publisher, err := c.EventPublisher()
	if err != nil {
		return nil, fmt.Errorf("failed to get event publisher for cancellation use case: %w", err)
	}

	baseUseCase := cancellationUsecase.NewCancellationUseCase(
		statusLookup,
		cancellationUsecase.NewStaticOrderTotalLookup(),
		publisher,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for cancellation use case: %w", err)
		}
		return cancellationUsecase.NewCancellationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCancellationHandler creates the cancellation HTTP handler.
func (c *Container) initCancellationHandler() (*cancellationHTTP.CancellationHandler, error) {
	useCase, err := c.CancellationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get cancellation use case for cancellation handler: %w", err)
	}

	return cancellationHTTP.NewCancellationHandler(useCase, c.Logger()), nil
}
