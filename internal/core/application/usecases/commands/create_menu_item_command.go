package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds an item to a store's menu. The item is validated
// eagerly so that a malformed command never reaches the handler.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	item *menu.Item

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	itemID, storeID kernel.UUID,
	name string,
	price kernel.Money,
	prepMinutes int,
	available bool,
) (CreateMenuItemCommand, error) {
	item, err := menu.NewItem(itemID, storeID, name, price, prepMinutes, available)
	if err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Item() *menu.Item {
	return c.item
}
