package agent

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when an agent is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent is a delivery agent attached to a store.
//
// Business rules:
//   - an agent must have a valid id, store id and a non-empty name
//   - new agents start active
//   - rotation order within a store is (createdAt, id)
type Agent struct {
	id        kernel.UUID
	storeID   kernel.UUID
	name      string
	phone     string
	active    bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewAgent creates an active agent.
//
// Example:
//
//	a, err := agent.NewAgent(kernel.NewUUID(), storeID, "Marta", "+1 555 0100", time.Now())
//	if err != nil {
//	    return err
//	}
func NewAgent(id, storeID kernel.UUID, name, phone string, createdAt time.Time) (*Agent, error) {
	return build(id, storeID, name, phone, true, createdAt)
}

// RestoreAgent reconstructs an Agent from persistent storage.
func RestoreAgent(id, storeID kernel.UUID, name, phone string, active bool, createdAt time.Time) (*Agent, error) {
	return build(id, storeID, name, phone, active, createdAt)
}

func build(id, storeID kernel.UUID, name, phone string, active bool, createdAt time.Time) (*Agent, error) {
	a := &Agent{
		phone:     strings.TrimSpace(phone),
		active:    active,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setStoreID(storeID),
		a.setName(name),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// IsEqual compares agents by identifier.
func (a *Agent) IsEqual(other *Agent) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// Validate checks that the Agent was built by NewAgent or RestoreAgent.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *Agent) ID() kernel.UUID {
	return a.id
}

func (a *Agent) StoreID() kernel.UUID {
	return a.storeID
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Phone() string {
	return a.phone
}

// IsActive reports whether the agent takes part in assignment rotation.
func (a *Agent) IsActive() bool {
	return a.active
}

func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

// Activate puts the agent back into rotation.
func (a *Agent) Activate() {
	a.active = true
}

// Deactivate takes the agent out of rotation.
func (a *Agent) Deactivate() {
	a.active = false
}

// SetActive is a convenience over Activate and Deactivate.
func (a *Agent) SetActive(active bool) {
	if active {
		a.Activate()
		return
	}
	a.Deactivate()
}

// RotatesBefore reports whether a precedes other in round-robin order.
func (a *Agent) RotatesBefore(other *Agent) bool {
	if !a.createdAt.Equal(other.createdAt) {
		return a.createdAt.Before(other.createdAt)
	}
	return a.id.String() < other.id.String()
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("store id", err)
	}
	a.storeID = storeID
	return nil
}

func (a *Agent) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameIsRequired
	}
	a.name = trimmed
	return nil
}
