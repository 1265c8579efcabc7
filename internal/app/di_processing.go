package app

import (
	"fmt"

	processingHTTP "github.com/allisson/orders/internal/processing/http"
	processingRepository "github.com/allisson/orders/internal/processing/repository"
	processingUsecase "github.com/allisson/orders/internal/processing/usecase"
)

// ProcessingRecordRepository returns the processing record repository instance.
func (c *Container) ProcessingRecordRepository() (processingUsecase.ProcessingRecordRepository, error) {
	var err error
	c.processingRepositoryInit.Do(func() {
		c.processingRepository, err = c.initProcessingRecordRepository()
		if err != nil {
			c.initErrors["processingRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["processingRepository"]; exists {
		return nil, storedErr
	}
	return c.processingRepository, nil
}

// ProcessingUseCase returns the order processing use case instance.
func (c *Container) ProcessingUseCase() (processingUsecase.ProcessingUseCase, error) {
	var err error
	c.processingUseCaseInit.Do(func() {
		c.processingUseCase, err = c.initProcessingUseCase()
		if err != nil {
			c.initErrors["processingUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["processingUseCase"]; exists {
		return nil, storedErr
	}
	return c.processingUseCase, nil
}

// ProcessingHandler returns the processing HTTP handler instance.
func (c *Container) ProcessingHandler() (*processingHTTP.ProcessingHandler, error) {
	var err error
	c.processingHandlerInit.Do(func() {
		c.processingHandler, err = c.initProcessingHandler()
		if err != nil {
			c.initErrors["processingHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["processingHandler"]; exists {
		return nil, storedErr
	}
	return c.processingHandler, nil
}

// initProcessingRecordRepository creates the repository matching the database driver.
func (c *Container) initProcessingRecordRepository() (processingUsecase.ProcessingRecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for processing record repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return processingRepository.NewMySQLProcessingRecordRepository(db), nil
	case "postgres":
		return processingRepository.NewPostgreSQLProcessingRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProcessingUseCase creates the processing use case with its hooks.
func (c *Container) initProcessingUseCase() (processingUsecase.ProcessingUseCase, error) {
	repo, err := c.ProcessingRecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get processing record repository for processing use case: %w", err)
	}

	baseUseCase := processingUsecase.NewProcessingUseCase(
		repo,
		processingUsecase.NewStaticInventoryChecker(),
		processingUsecase.NewStaticOrderValidator(),
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for processing use case: %w", err)
		}
		return processingUsecase.NewProcessingUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initProcessingHandler creates the processing HTTP handler.
func (c *Container) initProcessingHandler() (*processingHTTP.ProcessingHandler, error) {
	useCase, err := c.ProcessingUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get processing use case for processing handler: %w", err)
	}

	return processingHTTP.NewProcessingHandler(useCase, c.Logger()), nil
}
