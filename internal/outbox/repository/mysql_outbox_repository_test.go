package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/orders/internal/outbox/domain"
)

func TestMySQLOutboxEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLOutboxEventRepository(db)
		event := domain.NewOutboxEvent("order.cancelled", "ORD-1", []byte(`{"orderId":"ORD-1"}`))
		idBytes, err := event.ID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
			WithArgs(idBytes, "order.cancelled", "ORD-1", `{"orderId":"ORD-1"}`, domain.OutboxEventStatusPending,
				0, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, event))
	})

	t.Run("Error_Exec", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLOutboxEventRepository(db)
		dbErr := errors.New("connection reset")

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).WillReturnError(dbErr)

		err := repo.Create(ctx, domain.NewOutboxEvent("order.cancelled", "ORD-1", []byte(`{}`)))
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestMySQLOutboxEventRepository_GetPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLOutboxEventRepository(db)
		event := domain.NewOutboxEvent("order.cancelled", "ORD-1", []byte(`{"orderId":"ORD-1"}`))
		idBytes, err := event.ID.MarshalBinary()
		require.NoError(t, err)
		now := time.Now().UTC()

		rows := sqlmock.NewRows(outboxColumns).
			AddRow(idBytes, event.EventType, event.AggregateKey, event.Payload, "pending", 1, "timeout", nil, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
			WithArgs(domain.OutboxEventStatusPending, 10).
			WillReturnRows(rows)

		events, err := repo.GetPendingEvents(ctx, 10)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, event.ID, events[0].ID)
		assert.Equal(t, "ORD-1", events[0].AggregateKey)
		assert.Equal(t, 1, events[0].Retries)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLOutboxEventRepository(db)
		now := time.Now().UTC()

		rows := sqlmock.NewRows(outboxColumns).
			AddRow([]byte{0x01}, "order.cancelled", "ORD-1", "{}", "pending", 0, nil, nil, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).WillReturnRows(rows)

		events, err := repo.GetPendingEvents(ctx, 10)
		assert.Nil(t, events)
		assert.Contains(t, err.Error(), "failed to unmarshal outbox event id")
	})
}

func TestMySQLOutboxEventRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLOutboxEventRepository(db)
	event := domain.NewOutboxEvent("order.cancelled", "ORD-1", []byte(`{}`))
	event.MarkAttemptFailed(errors.New("timeout"), 5)
	idBytes, err := event.ID.MarshalBinary()
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs(domain.OutboxEventStatusPending, 1, "timeout", nil, idBytes).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(context.Background(), event))
}
