package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/orders/internal/outbox/domain"
)

// Publisher stores events in the outbox instead of delivering them. The relay
// delivers them later through a Dispatcher.
type Publisher struct {
	outboxRepo OutboxEventRepository
	logger     *slog.Logger
}

// NewPublisher creates a new outbox Publisher.
func NewPublisher(outboxRepo OutboxEventRepository, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{
		outboxRepo: outboxRepo,
		logger:     logger,
	}
}

// Publish inserts a pending outbox event for topic keyed by key.
func (p *Publisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	event := domain.NewOutboxEvent(topic, key, payload)
	if err := p.outboxRepo.Create(ctx, event); err != nil {
		return err
	}

	p.logger.Debug("event stored in outbox",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", topic),
		slog.String("aggregate_key", key),
	)
	return nil
}
