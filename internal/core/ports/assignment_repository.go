package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery assignments.
type AssignmentRepository interface {
	// Add persists an assignment. An order has at most one assignment; a second
	// one yields a ConcurrencyConflictError.
	Add(ctx context.Context, assignment *delivery.Assignment) error

	Update(ctx context.Context, assignment *delivery.Assignment) error

	// GetByStoreAndOrder returns the assignment of an order within a store or an
	// ObjectNotFoundError.
	GetByStoreAndOrder(ctx context.Context, storeID, orderID kernel.UUID) (*delivery.Assignment, error)
}
