package commands

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand reports progress of a delivery: picked_up or delivered.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	orderID kernel.UUID
	status  delivery.Status
	notes   string

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	storeID, orderID kernel.UUID,
	status delivery.Status,
	notes string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		status: status,
		notes:  strings.TrimSpace(notes),
		guard:  guard.NewConstructorGuard(),
	}

	var statusErr error
	if status != delivery.PickedUp && status != delivery.Delivered {
		statusErr = errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not picked_up or delivered", status))
	}

	if err := errors.Join(
		validateID("store id", storeID, &cmd.storeID),
		validateID("order id", orderID, &cmd.orderID),
		statusErr,
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) StoreID() kernel.UUID    { return c.storeID }
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID    { return c.orderID }
func (c UpdateDeliveryStatusCommand) Status() delivery.Status { return c.status }
func (c UpdateDeliveryStatusCommand) Notes() string           { return c.notes }
