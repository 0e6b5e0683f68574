package queries

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrEstimateDeliveryTimeQueryIsNotConstructed = errors.New(
	"EstimateDeliveryTimeQuery must be created via NewEstimateDeliveryTimeQuery constructor",
)

// EstimateItem is one item to estimate. PrepMinutes wins over the menu lookup;
// without either the default preparation time applies.
type EstimateItem struct {
	MenuItemID  *kernel.UUID
	PrepMinutes *int
	Quantity    int
}

// EstimateDeliveryTimeQuery projects when a set of items would arrive if
// ordered now. StoreID, when set, scopes the menu lookup.
type EstimateDeliveryTimeQuery struct {
	storeID *kernel.UUID
	items   []EstimateItem

	guard guard.ConstructorGuard
}

func NewEstimateDeliveryTimeQuery(storeID *kernel.UUID, items []EstimateItem) (EstimateDeliveryTimeQuery, error) {
	if storeID != nil {
		if err := storeID.Validate(); err != nil {
			return EstimateDeliveryTimeQuery{}, errs.NewValueIsInvalidErrorWithCause("store id", err)
		}
	}

	var problems []error
	for i, item := range items {
		if item.Quantity <= 0 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].quantity", i), item.Quantity, 1, "unbounded"))
		}
		if item.PrepMinutes != nil && *item.PrepMinutes < 0 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].prepMinutes", i), *item.PrepMinutes, 0, "unbounded"))
		}
		if item.MenuItemID != nil {
			if err := item.MenuItemID.Validate(); err != nil {
				problems = append(problems, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].menuItemId", i), err))
			}
		}
	}
	if err := errors.Join(problems...); err != nil {
		return EstimateDeliveryTimeQuery{}, err
	}

	return EstimateDeliveryTimeQuery{
		storeID: storeID,
		items:   append([]EstimateItem(nil), items...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q EstimateDeliveryTimeQuery) StoreID() (kernel.UUID, bool) {
	if q.storeID == nil {
		return kernel.UUID{}, false
	}
	return *q.storeID, true
}

func (q EstimateDeliveryTimeQuery) Items() []EstimateItem {
	return append([]EstimateItem(nil), q.items...)
}

func (q EstimateDeliveryTimeQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryTimeQueryIsNotConstructed)
}
