package services

import (
	"fmt"
	"sort"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// Default workload thresholds, in active orders.
const (
	DefaultMediumThreshold = 5
	DefaultHighThreshold   = 10
)

// WorkloadLevel is a coarse classification of kitchen busyness.
type WorkloadLevel string

const (
	WorkloadLow    WorkloadLevel = "LOW"
	WorkloadMedium WorkloadLevel = "MEDIUM"
	WorkloadHigh   WorkloadLevel = "HIGH"
)

// Workload summarises the orders the kitchen is working on.
type Workload struct {
	ActiveOrders  int
	TotalPrepTime int
	AvgPrepTime   float64
	Level         WorkloadLevel
}

// KitchenTicket is the kitchen's view of an active order.
type KitchenTicket struct {
	OrderID   kernel.UUID
	Status    order.Status
	PrepTime  int
	CreatedAt time.Time
}

// TicketsFor converts orders into kitchen tickets, keeping their order.
func TicketsFor(orders []*order.Order) []KitchenTicket {
	tickets := make([]KitchenTicket, 0, len(orders))
	for _, o := range orders {
		tickets = append(tickets, KitchenTicket{
			OrderID:   o.ID(),
			Status:    o.Status(),
			PrepTime:  o.PrepTime(),
			CreatedAt: o.CreatedAt(),
		})
	}
	return tickets
}

// QueueEntry is one slot of the shortest-job-first kitchen queue.
type QueueEntry struct {
	Position  int
	OrderID   kernel.UUID
	Status    order.Status
	PrepTime  int
	CreatedAt time.Time
}

// KitchenLoadEstimator turns active kitchen orders into workload figures.
// Level is HIGH above the high threshold, MEDIUM above the medium one and LOW
// otherwise.
type KitchenLoadEstimator struct {
	mediumThreshold int
	highThreshold   int
}

func NewKitchenLoadEstimator(mediumThreshold, highThreshold int) (KitchenLoadEstimator, error) {
	if mediumThreshold < 0 {
		return KitchenLoadEstimator{}, errs.NewValueIsOutOfRangeError("medium threshold", mediumThreshold, 0, highThreshold)
	}
	if highThreshold < mediumThreshold {
		return KitchenLoadEstimator{}, errs.NewValueIsInvalidErrorWithCause("high threshold",
			fmt.Errorf("%d is below the medium threshold %d", highThreshold, mediumThreshold))
	}
	return KitchenLoadEstimator{mediumThreshold: mediumThreshold, highThreshold: highThreshold}, nil
}

// NewDefaultKitchenLoadEstimator uses DefaultMediumThreshold and DefaultHighThreshold.
func NewDefaultKitchenLoadEstimator() KitchenLoadEstimator {
	return KitchenLoadEstimator{mediumThreshold: DefaultMediumThreshold, highThreshold: DefaultHighThreshold}
}

// Workload computes totals over tickets. AvgPrepTime is 0 for an idle kitchen.
func (e KitchenLoadEstimator) Workload(tickets []KitchenTicket) Workload {
	w := Workload{ActiveOrders: len(tickets)}
	for _, t := range tickets {
		w.TotalPrepTime += t.PrepTime
	}
	if w.ActiveOrders > 0 {
		w.AvgPrepTime = float64(w.TotalPrepTime) / float64(w.ActiveOrders)
	}
	w.Level = e.level(w.ActiveOrders)
	return w
}

// OptimizeQueue orders the kitchen queue shortest job first. Tickets with
// equal prep time keep their input order. Nothing is persisted.
func (KitchenLoadEstimator) OptimizeQueue(tickets []KitchenTicket) []QueueEntry {
	queue := make([]QueueEntry, 0, len(tickets))
	for _, t := range tickets {
		queue = append(queue, QueueEntry{
			OrderID:   t.OrderID,
			Status:    t.Status,
			PrepTime:  t.PrepTime,
			CreatedAt: t.CreatedAt,
		})
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].PrepTime < queue[j].PrepTime
	})
	for i := range queue {
		queue[i].Position = i + 1
	}
	return queue
}

func (e KitchenLoadEstimator) level(active int) WorkloadLevel {
	switch {
	case active > e.highThreshold:
		return WorkloadHigh
	case active > e.mediumThreshold:
		return WorkloadMedium
	default:
		return WorkloadLow
	}
}
