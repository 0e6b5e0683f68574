package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/agent"
)

type SetAgentActiveCommandHandler struct {
	uowFactory AgentUoWFactory
}

func NewSetAgentActiveCommandHandler(uowFactory AgentUoWFactory) SetAgentActiveCommandHandler {
	return SetAgentActiveCommandHandler{uowFactory: uowFactory}
}

// Handle returns the agent after the change. Setting the current value is a no-op write.
func (h SetAgentActiveCommandHandler) Handle(ctx context.Context, cmd SetAgentActiveCommand) (*agent.Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	a, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}

	a.SetActive(cmd.Active())
	if err = agentRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
