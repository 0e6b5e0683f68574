package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler advances a delivery assignment. A
// delivered assignment moves its order to DELIVERED in the same transaction,
// so the two records never disagree.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      Clock
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory, clock Clock) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the updated assignment. A missing assignment yields an
// ObjectNotFoundError.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (*delivery.Assignment, error) {
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

	assignmentRepo := uow.AssignmentRepository()
	assignment, err := assignmentRepo.GetByStoreAndOrder(ctx, cmd.StoreID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock.now()
	if err = assignment.Advance(cmd.Status(), now, cmd.Notes()); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	if assignment.Status() == delivery.Delivered {
		orderRepo := uow.OrderRepository()
		o, getErr := orderRepo.Get(ctx, cmd.OrderID())
		if getErr != nil {
			return nil, getErr
		}
		if err = o.Transition(order.Delivered, now); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assignment, nil
}
