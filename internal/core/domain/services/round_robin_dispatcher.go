package services

import (
	"sort"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/order"
)

// Pairing is one proposed order to agent binding.
type Pairing struct {
	Order *order.Order
	Agent *agent.Agent
}

// RoundRobinDispatcher distributes ready orders over the active agents of a
// store.
//
// Business rules:
//   - orders are taken in creation order
//   - agents rotate in (createdAt, id) order
//   - the i-th order goes to agents[(cursor + i) mod len(agents)]
//   - no agents means no pairings, which is not an error
//
// The cursor is the number of assignments the store has handed out before
// this batch. Persisting it between calls keeps the rotation fair when calls
// only see part of the pool or a handful of orders.
//
// Example usage:
//
//	start, err := cursor.Reserve(ctx, storeID, int64(len(orders)))
//	if err != nil {
//	    return err
//	}
//	for _, p := range dispatcher.Pair(orders, agents, start) {
//	    // claim p.Order, create an assignment for p.Agent
//	}
type RoundRobinDispatcher struct{}

func NewRoundRobinDispatcher() RoundRobinDispatcher {
	return RoundRobinDispatcher{}
}

// Pair returns one pairing per order, or nil when there are no agents or no
// orders. Invalid orders and agents are dropped before pairing.
func (RoundRobinDispatcher) Pair(orders []*order.Order, agents []*agent.Agent, cursor int64) []Pairing {
	ready := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Validate() == nil {
			ready = append(ready, o)
		}
	}

	pool := make([]*agent.Agent, 0, len(agents))
	for _, a := range agents {
		if a.Validate() == nil && a.IsActive() {
			pool = append(pool, a)
		}
	}

	if len(ready) == 0 || len(pool) == 0 {
		return nil
	}

	sort.SliceStable(ready, func(i, j int) bool {
		return ready[i].CreatedAt().Before(ready[j].CreatedAt())
	})
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].RotatesBefore(pool[j])
	})

	n := int64(len(pool))
	offset := ((cursor % n) + n) % n

	pairings := make([]Pairing, 0, len(ready))
	for i, o := range ready {
		pairings = append(pairings, Pairing{
			Order: o,
			Agent: pool[(offset+int64(i))%n],
		})
	}
	return pairings
}
