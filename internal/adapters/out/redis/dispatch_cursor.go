// Package redis keeps the round-robin dispatch cursor in Redis for deployments
// that prefer it over the Postgres row.
package redis

import (
	"context"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pizzeria:dispatch-cursor:"

// DispatchCursor implements ports.DispatchCursor with INCRBY. The reservation
// is not part of the database transaction; a rolled back dispatch leaves the
// cursor advanced, which only shifts the rotation.
type DispatchCursor struct {
	client redis.Cmdable
}

func NewDispatchCursor(client redis.Cmdable) *DispatchCursor {
	return &DispatchCursor{client: client}
}

// NewClient connects to addr and pings it.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (c *DispatchCursor) Reserve(ctx context.Context, storeID kernel.UUID, n int64) (int64, error) {
	if err := storeID.Validate(); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("n", n, 1, "unbounded")
	}

	position, err := c.client.IncrBy(ctx, keyPrefix+storeID.String(), n).Result()
	if err != nil {
		return 0, errs.NewStoreUnavailableError("reserve dispatch cursor", err)
	}
	return position - n, nil
}
