// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	DispatchCursorFactory interface {
		DispatchCursor() ports.DispatchCursor
	}

	// OrderUoW is used by commands that only move orders between statuses.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW prices new orders from the store's menu.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	AgentUoWFactory interface {
		Create() AgentUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// DeliveryUoW coordinates orders, agents, assignments and the dispatch
	// cursor in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   start, err := uow.DispatchCursor().Reserve(ctx, storeID, int64(len(orders)))
	//   // ... claim orders, add assignments
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
		AssignmentRepoFactory
		DispatchCursorFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)

// Clock returns the current time. Handlers fall back to time.Now when none is given.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
