package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrListAgentsQueryIsNotConstructed = errors.New("ListAgentsQuery must be created via NewListAgentsQuery constructor")

// ListAgentsQuery lists a store's delivery agents in rotation order. Without an
// active filter inactive agents are included.
type ListAgentsQuery struct {
	storeID kernel.UUID
	active  *bool

	guard guard.ConstructorGuard
}

func NewListAgentsQuery(storeID kernel.UUID, active *bool) (ListAgentsQuery, error) {
	if err := storeID.Validate(); err != nil {
		return ListAgentsQuery{}, errs.NewValueIsRequiredErrorWithCause("store id", err)
	}
	return ListAgentsQuery{storeID: storeID, active: active, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAgentsQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Active returns the activity filter, if any.
func (q ListAgentsQuery) Active() (bool, bool) {
	if q.active == nil {
		return false, false
	}
	return *q.active, true
}

func (q ListAgentsQuery) Validate() error {
	return q.guard.Validate(ErrListAgentsQueryIsNotConstructed)
}

type ListAgentsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
}
