package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned for orders not built by NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a placed purchase.
//
// Invariants:
//   - at least one line item
//   - subtotal is the sum of line totals and total = subtotal + tax + deliveryFee;
//     both are fixed at creation
//   - status only changes through Transition, along the edges of Status
type Order struct {
	id      kernel.UUID
	userID  kernel.UUID
	storeID kernel.UUID
	items   []LineItem

	status Status
	// expectedStatus is the status currently persisted; conditional writes key on it.
	expectedStatus Status

	subtotal    kernel.Money
	tax         kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money

	createdAt           time.Time
	estimatedDelivery   *time.Time
	actualDelivery      *time.Time
	specialInstructions string

	events        []StatusChanged
	isConstructed bool
}

// NewOrder places an order in PENDING status and records its placement event.
//
//	o, err := order.NewOrder(id, userID, storeID, items, tax, fee, "extra napkins", now)
func NewOrder(
	id, userID, storeID kernel.UUID,
	items []LineItem,
	tax, deliveryFee kernel.Money,
	specialInstructions string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:              Pending,
		tax:                 tax,
		deliveryFee:         deliveryFee,
		createdAt:           createdAt.UTC(),
		specialInstructions: strings.TrimSpace(specialInstructions),
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setIDs(id, userID, storeID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	var err error
	if o.subtotal, err = subtotalOf(o.items); err != nil {
		return nil, err
	}
	if o.total, err = kernel.Sum(o.subtotal, o.tax, o.deliveryFee); err != nil {
		return nil, err
	}

	o.record(Unknown, Pending, o.createdAt)
	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID                  kernel.UUID
	UserID              kernel.UUID
	StoreID             kernel.UUID
	Items               []LineItem
	Status              Status
	Subtotal            kernel.Money
	Tax                 kernel.Money
	DeliveryFee         kernel.Money
	Total               kernel.Money
	CreatedAt           time.Time
	EstimatedDelivery   *time.Time
	ActualDelivery      *time.Time
	SpecialInstructions string
}

// RestoreOrder rebuilds an order loaded from storage. The persisted status
// becomes the expected status of the next conditional write.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:              s.Status,
		expectedStatus:      s.Status,
		subtotal:            s.Subtotal,
		tax:                 s.Tax,
		deliveryFee:         s.DeliveryFee,
		total:               s.Total,
		createdAt:           s.CreatedAt.UTC(),
		estimatedDelivery:   s.EstimatedDelivery,
		actualDelivery:      s.ActualDelivery,
		specialInstructions: s.SpecialInstructions,
		items:               append([]LineItem(nil), s.Items...),
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setIDs(s.ID, s.UserID, s.StoreID),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if total, err := kernel.Sum(s.Subtotal, s.Tax, s.DeliveryFee); err != nil || !total.IsEqual(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s is not subtotal %s + tax %s + delivery fee %s", s.Total, s.Subtotal, s.Tax, s.DeliveryFee))
	}

	return o, nil
}

func subtotalOf(items []LineItem) (kernel.Money, error) {
	lineTotals := make([]kernel.Money, 0, len(items))
	for _, item := range items {
		lineTotals = append(lineTotals, item.LineTotal())
	}
	return kernel.Sum(lineTotals...)
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID               { return o.id }
func (o *Order) UserID() kernel.UUID           { return o.userID }
func (o *Order) StoreID() kernel.UUID          { return o.storeID }
func (o *Order) Status() Status                { return o.status }
func (o *Order) Subtotal() kernel.Money        { return o.subtotal }
func (o *Order) Tax() kernel.Money             { return o.tax }
func (o *Order) DeliveryFee() kernel.Money     { return o.deliveryFee }
func (o *Order) Total() kernel.Money           { return o.total }
func (o *Order) CreatedAt() time.Time          { return o.createdAt }
func (o *Order) EstimatedDelivery() *time.Time { return o.estimatedDelivery }
func (o *Order) ActualDelivery() *time.Time    { return o.actualDelivery }
func (o *Order) SpecialInstructions() string   { return o.specialInstructions }

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// ExpectedStatus is the status the store holds for this order; Unknown for an
// order that was never persisted.
func (o *Order) ExpectedStatus() Status {
	return o.expectedStatus
}

// MarkPersisted is called by repositories after a successful write.
func (o *Order) MarkPersisted() {
	o.expectedStatus = o.status
}

// PrepTime is the total kitchen time of the order in minutes.
func (o *Order) PrepTime() int {
	total := 0
	for _, item := range o.items {
		total += item.PrepTime()
	}
	return total
}

// SetEstimatedDelivery records the delivery time promised to the customer.
func (o *Order) SetEstimatedDelivery(at time.Time) {
	t := at.UTC()
	o.estimatedDelivery = &t
}

// Transition moves the order to target. Illegal edges return an
// InvalidTransitionError and leave the order unchanged. Reaching DELIVERED
// stamps the actual delivery time.
func (o *Order) Transition(target Status, now time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	now = now.UTC()
	if next == Delivered {
		o.actualDelivery = &now
	}

	from := o.status
	o.status = next
	o.record(from, next, now)
	return nil
}

// IsStale reports whether the order has waited in PENDING for longer than staleAfter.
func (o *Order) IsStale(now time.Time, staleAfter time.Duration) bool {
	return o.status == Pending && o.createdAt.Before(now.Add(-staleAfter))
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []StatusChanged {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(from, to Status, at time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		UserID:     o.userID,
		StoreID:    o.storeID,
		From:       from,
		To:         to,
		OccurredAt: at,
	})
}

func (o *Order) setIDs(id, userID, storeID kernel.UUID) error {
	ids := []struct {
		name  string
		value kernel.UUID
	}{{"order id", id}, {"user id", userID}, {"store id", storeID}}

	var errList []error
	for _, v := range ids {
		if err := v.value.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", v.name, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.id, o.userID, o.storeID = id, userID, storeID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}
