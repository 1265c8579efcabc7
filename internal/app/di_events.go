package app

import (
	"context"
	"fmt"

	cancellationUsecase "github.com/allisson/orders/internal/cancellation/usecase"
	"github.com/allisson/orders/internal/config"
	"github.com/allisson/orders/internal/events"
	outboxRepository "github.com/allisson/orders/internal/outbox/repository"
	outboxUsecase "github.com/allisson/orders/internal/outbox/usecase"
)

// BrokerPublisher delivers events to the message broker and releases its resources on Close.
type BrokerPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
	Close() error
}

// BrokerPublisher returns the Kafka publisher, or a logging publisher when no
// brokers are configured.
func (c *Container) BrokerPublisher() BrokerPublisher {
	c.brokerPublisherInit.Do(func() {
		brokers := c.config.GetKafkaBrokers()
		if len(brokers) == 0 {
			c.Logger().Warn("no kafka brokers configured, events will only be logged")
			c.brokerPublisher = events.NewLogPublisher(c.Logger())
			return
		}
		c.brokerPublisher = events.NewKafkaPublisher(brokers, c.config.KafkaBatchTimeout, c.Logger())
	})
	return c.brokerPublisher
}

// EventPublisher returns the publisher used by the cancellation workflow, selected
// by EVENT_DELIVERY.
func (c *Container) EventPublisher() (cancellationUsecase.EventPublisher, error) {
	var err error
	c.eventPublisherInit.Do(func() {
		c.eventPublisher, err = c.initEventPublisher()
		if err != nil {
			c.initErrors["eventPublisher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventPublisher"]; exists {
		return nil, storedErr
	}
	return c.eventPublisher, nil
}

// OutboxRepository returns the outbox event repository instance.
func (c *Container) OutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	var err error
	c.outboxRepositoryInit.Do(func() {
		c.outboxRepository, err = c.initOutboxRepository()
		if err != nil {
			c.initErrors["outboxRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboxRepository"]; exists {
		return nil, storedErr
	}
	return c.outboxRepository, nil
}

// OutboxUseCase returns the outbox relay use case instance.
func (c *Container) OutboxUseCase() (outboxUsecase.UseCase, error) {
	var err error
	c.outboxUseCaseInit.Do(func() {
		c.outboxUseCase, err = c.initOutboxUseCase()
		if err != nil {
			c.initErrors["outboxUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboxUseCase"]; exists {
		return nil, storedErr
	}
	return c.outboxUseCase, nil
}

// initEventPublisher creates the direct or outbox publisher.
func (c *Container) initEventPublisher() (cancellationUsecase.EventPublisher, error) {
	switch c.config.EventDelivery {
	case config.EventDeliveryDirect:
		return c.BrokerPublisher(), nil
	case config.EventDeliveryOutbox:
		outboxRepo, err := c.OutboxRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to get outbox repository for event publisher: %w", err)
		}
		return outboxUsecase.NewPublisher(outboxRepo, c.Logger()), nil
	default:
		return nil, fmt.Errorf("unsupported event delivery: %s", c.config.EventDelivery)
	}
}

// initOutboxRepository creates the outbox event repository instance.
func (c *Container) initOutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for outbox repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return outboxRepository.NewMySQLOutboxEventRepository(db), nil
	case "postgres":
		return outboxRepository.NewPostgreSQLOutboxEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOutboxUseCase creates the outbox relay delivering to the broker publisher.
func (c *Container) initOutboxUseCase() (outboxUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
	}

	useCaseConfig := outboxUsecase.Config{
		Interval:   c.config.OutboxInterval,
		BatchSize:  c.config.OutboxBatchSize,
		MaxRetries: c.config.OutboxMaxRetries,
	}

	return outboxUsecase.NewOutboxUseCase(
		useCaseConfig,
		txManager,
		outboxRepo,
		c.BrokerPublisher(),
		c.Logger(),
	), nil
}
