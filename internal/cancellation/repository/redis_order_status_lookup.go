// Package repository provides order status sources for the cancellation workflow.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	cancellationDomain "github.com/allisson/orders/internal/cancellation/domain"
	apperrors "github.com/allisson/orders/internal/errors"
)

// orderStatusKeyPrefix prefixes the Redis keys holding order statuses.
const orderStatusKeyPrefix = "orders:status:"

// stringGetter is the subset of the Redis client used by RedisOrderStatusLookup.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisOrderStatusLookup reads order statuses written by the order-management
// system under "orders:status:<orderId>". Orders without a key report the
// configured default status.
type RedisOrderStatusLookup struct {
	client        stringGetter
	defaultStatus cancellationDomain.OrderStatus
}

// Status returns the stored status of the order, or the default when no key exists.
func (r *RedisOrderStatusLookup) Status(
	ctx context.Context,
	orderID string,
) (cancellationDomain.OrderStatus, error) {
	value, err := r.client.Get(ctx, OrderStatusKey(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return r.defaultStatus, nil
	}
	if err != nil {
		return "", apperrors.Wrap(err, "failed to read order status from redis")
	}

	return cancellationDomain.ParseOrderStatus(value)
}

// OrderStatusKey returns the Redis key holding the status of an order.
func OrderStatusKey(orderID string) string {
	return fmt.Sprintf("%s%s", orderStatusKeyPrefix, orderID)
}

// NewRedisOrderStatusLookup creates a lookup backed by the given Redis client.
func NewRedisOrderStatusLookup(
	client redis.UniversalClient,
	defaultStatus cancellationDomain.OrderStatus,
) *RedisOrderStatusLookup {
	return &RedisOrderStatusLookup{
		client:        client,
		defaultStatus: defaultStatus,
	}
}
