// Package domain defines the core outbox domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus represents the status of an outbox event
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// OutboxEvent represents an event in the transactional outbox pattern.
// EventType is the destination topic and AggregateKey the message key.
type OutboxEvent struct {
	ID           uuid.UUID
	EventType    string
	AggregateKey string
	Payload      string
	Status       OutboxEventStatus
	Retries      int
	LastError    *string
	ProcessedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOutboxEvent creates a pending event for topic keyed by aggregateKey.
func NewOutboxEvent(topic, aggregateKey string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		ID:           uuid.Must(uuid.NewV7()),
		EventType:    topic,
		AggregateKey: aggregateKey,
		Payload:      string(payload),
		Status:       OutboxEventStatusPending,
	}
}

// MarkProcessed records a successful delivery.
func (e *OutboxEvent) MarkProcessed(now time.Time) {
	e.Status = OutboxEventStatusProcessed
	e.ProcessedAt = &now
	e.LastError = nil
}

// MarkAttemptFailed records a failed delivery. The event becomes failed once
// retries reaches maxRetries.
func (e *OutboxEvent) MarkAttemptFailed(err error, maxRetries int) {
	e.Retries++
	errorMsg := err.Error()
	e.LastError = &errorMsg

	if e.Retries >= maxRetries {
		e.Status = OutboxEventStatusFailed
	}
}
