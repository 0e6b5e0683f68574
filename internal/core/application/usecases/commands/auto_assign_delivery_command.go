package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrAutoAssignDeliveryCommandIsNotConstructed = errors.New(
	"AutoAssignDeliveryCommand must be created via NewAutoAssignDeliveryCommand constructor",
)

// AutoAssignDeliveryCommand pairs the store's ready orders with its active
// agents. With an order id only that order is considered.
type AutoAssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAutoAssignDeliveryCommand accepts a nil orderID for "every ready order".
func NewAutoAssignDeliveryCommand(storeID kernel.UUID, orderID *kernel.UUID) (AutoAssignDeliveryCommand, error) {
	cmd := AutoAssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateID("store id", storeID, &cmd.storeID); err != nil {
		return AutoAssignDeliveryCommand{}, err
	}

	if orderID != nil {
		var id kernel.UUID
		if err := validateID("order id", *orderID, &id); err != nil {
			return AutoAssignDeliveryCommand{}, err
		}
		cmd.orderID = &id
	}

	return cmd, nil
}

func (c AutoAssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignDeliveryCommandIsNotConstructed)
}

func (c AutoAssignDeliveryCommand) StoreID() kernel.UUID {
	return c.storeID
}

// OrderID returns the single order to assign and whether one was given.
func (c AutoAssignDeliveryCommand) OrderID() (kernel.UUID, bool) {
	if c.orderID == nil {
		return kernel.UUID{}, false
	}
	return *c.orderID, true
}
