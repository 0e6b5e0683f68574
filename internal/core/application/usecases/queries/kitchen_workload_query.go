package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrKitchenWorkloadQueryIsNotConstructed = errors.New(
		"KitchenWorkloadQuery must be created via NewKitchenWorkloadQuery constructor",
	)
	ErrOptimizeKitchenQueueQueryIsNotConstructed = errors.New(
		"OptimizeKitchenQueueQuery must be created via NewOptimizeKitchenQueueQuery constructor",
	)
)

// KitchenWorkloadQuery summarises the orders a store's kitchen is working on
// (ACCEPTED and PREPARING).
type KitchenWorkloadQuery struct {
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewKitchenWorkloadQuery(storeID kernel.UUID) (KitchenWorkloadQuery, error) {
	if err := storeID.Validate(); err != nil {
		return KitchenWorkloadQuery{}, errs.NewValueIsRequiredErrorWithCause("store id", err)
	}
	return KitchenWorkloadQuery{storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q KitchenWorkloadQuery) StoreID() kernel.UUID {
	return q.storeID
}

func (q KitchenWorkloadQuery) Validate() error {
	return q.guard.Validate(ErrKitchenWorkloadQueryIsNotConstructed)
}

type KitchenWorkloadQueryResponse struct {
	StoreID kernel.UUID
	services.Workload
}

// OptimizeKitchenQueueQuery reorders the same order set shortest job first.
// Nothing is persisted.
type OptimizeKitchenQueueQuery struct {
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOptimizeKitchenQueueQuery(storeID kernel.UUID) (OptimizeKitchenQueueQuery, error) {
	if err := storeID.Validate(); err != nil {
		return OptimizeKitchenQueueQuery{}, errs.NewValueIsRequiredErrorWithCause("store id", err)
	}
	return OptimizeKitchenQueueQuery{storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q OptimizeKitchenQueueQuery) StoreID() kernel.UUID {
	return q.storeID
}

func (q OptimizeKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrOptimizeKitchenQueueQueryIsNotConstructed)
}

type OptimizeKitchenQueueQueryResponse struct {
	OriginalQueueLength int
	OptimizedQueue      []services.QueueEntry
}
