package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/agent"
)

// CreateAgentCommandHandler persists a new active agent.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
	clock      Clock
}

func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory, clock Clock) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) (*agent.Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	a, err := agent.NewAgent(cmd.AgentID(), cmd.StoreID(), cmd.Name(), cmd.Phone(), h.clock.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgentRepository().Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
