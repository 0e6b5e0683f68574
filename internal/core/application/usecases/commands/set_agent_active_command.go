package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrSetAgentActiveCommandIsNotConstructed = errors.New(
	"SetAgentActiveCommand must be created via NewSetAgentActiveCommand constructor",
)

// SetAgentActiveCommand puts an agent into or out of assignment rotation.
type SetAgentActiveCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	active  bool

	guard guard.ConstructorGuard
}

func NewSetAgentActiveCommand(agentID kernel.UUID, active bool) (SetAgentActiveCommand, error) {
	cmd := SetAgentActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := validateID("agent id", agentID, &cmd.agentID); err != nil {
		return SetAgentActiveCommand{}, err
	}

	return cmd, nil
}

func (c SetAgentActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetAgentActiveCommandIsNotConstructed)
}

func (c SetAgentActiveCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c SetAgentActiveCommand) Active() bool {
	return c.active
}
