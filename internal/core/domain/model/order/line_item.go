package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// LineItem is one menu item of an order, priced when the order was placed.
// PrepMinutes is the menu item's preparation time per unit.
type LineItem struct {
	menuItemID  kernel.UUID
	name        string
	quantity    int
	unitPrice   kernel.Money
	lineTotal   kernel.Money
	prepMinutes int
}

// maxLinePrepMinutes bounds prepMinutes × quantity so kitchen sums stay far from overflow.
const maxLinePrepMinutes = math.MaxInt32

// NewLineItem validates a line item. Quantity must be positive and the
// preparation time must not be negative.
func NewLineItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money, prepMinutes int) (LineItem, error) {
	var errList []error
	if err := menuItemID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("line item name"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if prepMinutes < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("preparation time", fmt.Errorf("%d is negative", prepMinutes)))
	}
	if quantity > 0 && prepMinutes > maxLinePrepMinutes/quantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("preparation time", prepMinutes, 0, maxLinePrepMinutes/quantity))
	}
	lineTotal, err := unitPrice.Multiply(max(quantity, 0))
	if err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuItemID:  menuItemID,
		name:        name,
		quantity:    quantity,
		unitPrice:   unitPrice,
		lineTotal:   lineTotal,
		prepMinutes: prepMinutes,
	}, nil
}

func (li LineItem) MenuItemID() kernel.UUID { return li.menuItemID }
func (li LineItem) Name() string            { return li.name }
func (li LineItem) Quantity() int           { return li.quantity }
func (li LineItem) UnitPrice() kernel.Money { return li.unitPrice }
func (li LineItem) PrepMinutes() int        { return li.prepMinutes }

// LineTotal is unitPrice × quantity, checked for overflow by NewLineItem.
func (li LineItem) LineTotal() kernel.Money {
	return li.lineTotal
}

// PrepTime is the kitchen time of the whole line in minutes.
func (li LineItem) PrepTime() int {
	return li.prepMinutes * li.quantity
}
