// Package menu holds the menu items a store sells. Their preparation times
// feed the kitchen load estimator and the delivery time estimator.
package menu

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// DefaultPrepMinutes is used when an item is saved without a preparation time.
const DefaultPrepMinutes = 15

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

type Item struct {
	id          kernel.UUID
	storeID     kernel.UUID
	name        string
	price       kernel.Money
	prepMinutes int
	available   bool

	guard guard.ConstructorGuard
}

// NewItem creates a menu item. A zero prepMinutes falls back to DefaultPrepMinutes.
func NewItem(id, storeID kernel.UUID, name string, price kernel.Money, prepMinutes int, available bool) (*Item, error) {
	if prepMinutes == 0 {
		prepMinutes = DefaultPrepMinutes
	}

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := storeID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("store id", err))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if prepMinutes < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("prep minutes", prepMinutes, 1, "unbounded"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Item{
		id:          id,
		storeID:     storeID,
		name:        name,
		price:       price,
		prepMinutes: prepMinutes,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID      { return i.id }
func (i *Item) StoreID() kernel.UUID { return i.storeID }
func (i *Item) Name() string         { return i.name }
func (i *Item) Price() kernel.Money  { return i.price }
func (i *Item) PrepMinutes() int     { return i.prepMinutes }
func (i *Item) IsAvailable() bool    { return i.available }
