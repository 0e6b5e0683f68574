package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// EventPublisher delivers order status changes to downstream consumers such
// as customer notifications. Publishing happens after commit; a failure is
// reported but never undoes the transition.
type EventPublisher interface {
	Publish(ctx context.Context, events []order.StatusChanged) error
}
