// Package ports defines the contracts between the order lifecycle core and
// its infrastructure: repositories, the dispatch cursor, the event publisher
// and the unit of work that binds them to one transaction.
package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Line items are returned with the preparation time of their menu item.
type OrderRepository interface {
	// Add persists a newly placed order and its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order's status and timestamps if and only if the stored
	// status still equals aggregate.ExpectedStatus(). A missing order yields an
	// ObjectNotFoundError, a changed status a ConcurrencyConflictError. On
	// success the aggregate is marked persisted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByStoreAndStatuses returns the store's orders in any of statuses,
	// oldest first. A non-positive limit means no limit.
	FindByStoreAndStatuses(ctx context.Context, storeID kernel.UUID, statuses []order.Status, limit int) ([]*order.Order, error)

	// FindStale returns the store's PENDING orders created before cutoff, oldest first.
	FindStale(ctx context.Context, storeID kernel.UUID, cutoff time.Time) ([]*order.Order, error)
}
