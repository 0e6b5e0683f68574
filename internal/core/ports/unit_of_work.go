package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories returned
// between Begin and Commit share the transaction. Status change events of the
// orders written through it are published only after a successful Commit and
// dropped on Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	AgentRepository() AgentRepository
	AssignmentRepository() AssignmentRepository
	MenuRepository() MenuRepository
	DispatchCursor() DispatchCursor
}
