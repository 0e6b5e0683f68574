package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	Add(ctx context.Context, aggregate *agent.Agent) error
	Update(ctx context.Context, aggregate *agent.Agent) error
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// FindActiveByStore returns the store's active agents in rotation order
	// (createdAt, then id).
	FindActiveByStore(ctx context.Context, storeID kernel.UUID) ([]*agent.Agent, error)
}
