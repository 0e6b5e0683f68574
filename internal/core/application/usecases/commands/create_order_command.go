package commands

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// OrderItem is one requested menu item with its quantity.
type OrderItem struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a customer placing an order at a store.
// Prices and preparation times are taken from the store's menu, never from
// the request.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), storeID, userID,
//	    []OrderItem{{MenuItemID: margheritaID, Quantity: 2}}, "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	storeID             kernel.UUID
	userID              kernel.UUID
	items               []OrderItem
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and that every item has a
// positive quantity.
func NewCreateOrderCommand(
	orderID, storeID, userID kernel.UUID,
	items []OrderItem,
	specialInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		specialInstructions: strings.TrimSpace(specialInstructions),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID("order id", orderID, &cmd.orderID),
		validateID("store id", storeID, &cmd.storeID),
		validateID("user id", userID, &cmd.userID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns a copy of the requested items.
func (c CreateOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	var errList []error
	for i, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("items[%d].menuItemId: %w", i, err))
		}
		if item.Quantity <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i), fmt.Errorf("%d is not greater than 0", item.Quantity)))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.items = append([]OrderItem(nil), items...)
	return nil
}

// validateID copies id into dst when it is valid and names the field otherwise.
func validateID(name string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}
