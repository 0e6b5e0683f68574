package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
	ErrAgentNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateAgentCommand registers a delivery agent at a store.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	storeID kernel.UUID
	name    string
	phone   string

	guard guard.ConstructorGuard
}

func NewCreateAgentCommand(agentID, storeID kernel.UUID, name, phone string) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID("agent id", agentID, &cmd.agentID),
		validateID("store id", storeID, &cmd.storeID),
		cmd.setName(name),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return cmd, nil
}

func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

func (c CreateAgentCommand) AgentID() kernel.UUID { return c.agentID }
func (c CreateAgentCommand) StoreID() kernel.UUID { return c.storeID }
func (c CreateAgentCommand) Name() string         { return c.name }
func (c CreateAgentCommand) Phone() string        { return c.phone }

func (c *CreateAgentCommand) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrAgentNameIsRequired
	}
	c.name = trimmed
	return nil
}
