package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// AutoAssignResult lists the assignments made by one run.
type AutoAssignResult struct {
	Assigned    int
	Assignments []*delivery.Assignment
}

func noAssignments() AutoAssignResult {
	return AutoAssignResult{Assignments: []*delivery.Assignment{}}
}

// AutoAssignDeliveryCommandHandler orchestrates delivery assignment.
//
// Workflow:
//   - load READY_FOR_PICKUP orders of the store (or the requested one)
//   - load active agents; none means an empty result and no writes
//   - reserve len(orders) slots of the store's dispatch cursor
//   - pair orders with agents round-robin from the reserved position
//   - per pair, claim the order with a conditional move to OUT_FOR_DELIVERY,
//     then create its assignment
//
// A claim that loses a race with another assigner is skipped, so an order is
// never assigned twice.
//
// Example:
//
//	handler := NewAutoAssignDeliveryCommandHandler(uowFactory, delivery.DefaultPickupLead, nil)
//	cmd, _ := NewAutoAssignDeliveryCommand(storeID, nil)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("assigned %d orders", result.Assigned)
type AutoAssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.RoundRobinDispatcher
	pickupLead time.Duration
	clock      Clock
}

func NewAutoAssignDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	pickupLead time.Duration,
	clock Clock,
) AutoAssignDeliveryCommandHandler {
	return AutoAssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewRoundRobinDispatcher(),
		pickupLead: pickupLead,
		clock:      clock,
	}
}

func (h AutoAssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AutoAssignDeliveryCommand) (AutoAssignResult, error) {
	result := noAssignments()
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := h.readyOrders(ctx, orderRepo, cmd)
	if err != nil || len(orders) == 0 {
		return result, err
	}

	agents, err := uow.AgentRepository().FindActiveByStore(ctx, cmd.StoreID())
	if err != nil || len(agents) == 0 {
		return result, err
	}

	start, err := uow.DispatchCursor().Reserve(ctx, cmd.StoreID(), int64(len(orders)))
	if err != nil {
		return result, err
	}

	assignmentRepo := uow.AssignmentRepository()
	now := h.clock.now()
	for _, pair := range h.dispatcher.Pair(orders, agents, start) {
		if err = pair.Order.Transition(order.OutForDelivery, now); err != nil {
			return noAssignments(), err
		}

		if err = orderRepo.Update(ctx, pair.Order); err != nil {
			if errors.Is(err, errs.ErrConcurrencyConflict) {
				continue
			}
			return noAssignments(), err
		}

		assignment, assignErr := delivery.NewAssignment(
			kernel.NewUUID(), pair.Order.ID(), cmd.StoreID(), pair.Agent.ID(), now, h.pickupLead,
		)
		if assignErr != nil {
			return noAssignments(), assignErr
		}
		if err = assignmentRepo.Add(ctx, assignment); err != nil {
			return noAssignments(), err
		}

		result.Assignments = append(result.Assignments, assignment)
	}

	if err = uow.Commit(ctx); err != nil {
		return noAssignments(), err
	}

	result.Assigned = len(result.Assignments)
	return result, nil
}

// readyOrders returns the candidate orders. A requested order that belongs to
// another store or is not ready is silently not a candidate.
func (h AutoAssignDeliveryCommandHandler) readyOrders(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd AutoAssignDeliveryCommand,
) ([]*order.Order, error) {
	orderID, single := cmd.OrderID()
	if !single {
		return orderRepo.FindByStoreAndStatuses(ctx, cmd.StoreID(), []order.Status{order.ReadyForPickup}, 0)
	}

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.StoreID().IsEqual(cmd.StoreID()) || o.Status() != order.ReadyForPickup {
		return nil, nil
	}
	return []*order.Order{o}, nil
}
