// Package notifications delivers order status change events to the outside
// world: Kafka for the customer notifier, the structured log when no broker is
// configured, and Prometheus counters. Fanout combines them.
package notifications
