package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// AutoCancelStaleOrdersCommandHandler is the stale order reaper. Orders that
// left PENDING between the read and the conditional write are skipped, which
// makes repeated and concurrent runs safe.
type AutoCancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewAutoCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory, clock Clock) AutoCancelStaleOrdersCommandHandler {
	return AutoCancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the ids of the orders it cancelled, oldest first.
func (h AutoCancelStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AutoCancelStaleOrdersCommand,
) ([]kernel.UUID, error) {
	cancelled := []kernel.UUID{}
	if err := cmd.Validate(); err != nil {
		return cancelled, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return cancelled, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.now()
	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.FindStale(ctx, cmd.StoreID(), now.Add(-cmd.StaleAfter()))
	if err != nil {
		return cancelled, err
	}

	for _, o := range stale {
		if !o.IsStale(now, cmd.StaleAfter()) {
			continue
		}
		if err = o.Transition(order.Cancelled, now); err != nil {
			return []kernel.UUID{}, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			if errors.Is(err, errs.ErrConcurrencyConflict) {
				continue
			}
			return []kernel.UUID{}, err
		}
		cancelled = append(cancelled, o.ID())
	}

	if len(cancelled) == 0 {
		return cancelled, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return []kernel.UUID{}, err
	}

	return cancelled, nil
}
