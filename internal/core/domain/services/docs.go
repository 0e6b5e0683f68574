// Package services provides domain services that work across aggregates of
// the order lifecycle and hold no state of their own.
//
// The package includes:
//   - RoundRobinDispatcher: pairs ready orders with active delivery agents
//   - KitchenLoadEstimator: summarises kitchen workload and builds a shortest-job-first queue
//   - DeliveryTimeEstimator: predicts when an order reaches the customer
//
// Persistence, cursors and clocks are supplied by the callers, which keeps
// every service a pure function of its inputs.
package services
