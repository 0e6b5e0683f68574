package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// TransitionOrderStatusCommandHandler is the status transition engine. The
// write is conditional on the status the order was read with, so of two
// concurrent transitions of the same order only one succeeds; the other gets
// a ConcurrencyConflictError.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock Clock) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the order in its new status. An illegal edge yields an
// InvalidTransitionError and nothing is written.
func (h TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Transition(cmd.Target(), h.clock.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
