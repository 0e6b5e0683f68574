package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"
)

// Pricing defaults.
const (
	DefaultTaxRateBasisPoints = 800
	DefaultDeliveryFeeCents   = 300
)

// Pricing holds the store-wide tax rate and flat delivery fee.
type Pricing struct {
	TaxRateBasisPoints int
	DeliveryFee        kernel.Money
}

func DefaultPricing() Pricing {
	return Pricing{
		TaxRateBasisPoints: DefaultTaxRateBasisPoints,
		DeliveryFee:        kernel.MustNewMoney(DefaultDeliveryFeeCents),
	}
}

// CreateOrderCommandHandler prices an order from the store's menu, estimates
// its delivery time and persists it in PENDING.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, DefaultPricing(),
//	    services.NewDefaultDeliveryTimeEstimator(), nil)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // a menu item does not exist in this store
//	}
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	pricing    Pricing
	estimator  services.DeliveryTimeEstimator
	clock      Clock
}

func NewCreateOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	pricing Pricing,
	estimator services.DeliveryTimeEstimator,
	clock Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		estimator:  estimator,
		clock:      clock,
	}
}

// Handle returns the placed order. Unknown menu items yield an
// ObjectNotFoundError and unavailable ones a ValueIsInvalidError.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requested := cmd.Items()
	ids := make([]kernel.UUID, 0, len(requested))
	for _, item := range requested {
		ids = append(ids, item.MenuItemID)
	}

	catalogue, err := uow.MenuRepository().GetMany(ctx, cmd.StoreID(), ids)
	if err != nil {
		return nil, err
	}

	var (
		lines      = make([]order.LineItem, 0, len(requested))
		prepItems  = make([]services.PrepItem, 0, len(requested))
		lineTotals = make([]kernel.Money, 0, len(requested))
		errList    []error
	)
	for _, item := range requested {
		menuItem, ok := catalogue[item.MenuItemID]
		if !ok {
			errList = append(errList, errs.NewObjectNotFoundError("menu item", item.MenuItemID))
			continue
		}
		if !menuItem.IsAvailable() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("menu item",
				fmt.Errorf("%s is not available", menuItem.Name())))
			continue
		}

		line, lineErr := order.NewLineItem(menuItem.ID(), menuItem.Name(), item.Quantity, menuItem.Price(), menuItem.PrepMinutes())
		if lineErr != nil {
			errList = append(errList, lineErr)
			continue
		}
		lines = append(lines, line)
		prepItems = append(prepItems, services.PrepItem{PrepMinutes: line.PrepMinutes(), Quantity: line.Quantity()})
		lineTotals = append(lineTotals, line.LineTotal())
	}
	if err = errors.Join(errList...); err != nil {
		return nil, err
	}

	subtotal, err := kernel.Sum(lineTotals...)
	if err != nil {
		return nil, err
	}
	tax, err := subtotal.Percent(h.pricing.TaxRateBasisPoints)
	if err != nil {
		return nil, err
	}

	now := h.clock.now()
	placed, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.StoreID(),
		lines,
		tax,
		h.pricing.DeliveryFee,
		cmd.SpecialInstructions(),
		now,
	)
	if err != nil {
		return nil, err
	}
	placed.SetEstimatedDelivery(h.estimator.Estimate(prepItems, now).EstimatedDelivery)

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
