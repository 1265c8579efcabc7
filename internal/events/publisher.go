// Package events delivers order events to the message broker.
package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	apperrors "github.com/allisson/orders/internal/errors"
)

// messageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes keyed events to Kafka topics.
type KafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// Publish writes one message with the given key to topic.
func (k *KafkaPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return apperrors.Wrapf(err, "failed to publish event to %s", topic)
	}

	k.logger.Debug("event published",
		slog.String("topic", topic),
		slog.String("key", key),
	)
	return nil
}

// Close flushes pending messages and closes the underlying writer.
func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

// NewKafkaPublisher creates a publisher writing to the given brokers. The topic is
// chosen per message.
func NewKafkaPublisher(brokers []string, batchTimeout time.Duration, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, logger)
}

func newKafkaPublisher(writer messageWriter, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// LogPublisher logs events instead of delivering them. It is used when no broker
// is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// Publish logs the event at info level.
func (l *LogPublisher) Publish(_ context.Context, topic, key string, payload []byte) error {
	l.logger.Info("event emitted",
		slog.String("topic", topic),
		slog.String("key", key),
		slog.String("payload", string(payload)),
	)
	return nil
}

// Close is a no-op.
func (l *LogPublisher) Close() error {
	return nil
}

// NewLogPublisher creates a publisher that writes events to logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogPublisher{logger: logger}
}
