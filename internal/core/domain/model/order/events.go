package order

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
)

// StatusChanged is recorded by every accepted status change, including the
// initial Unknown → PENDING placement.
type StatusChanged struct {
	OrderID    kernel.UUID
	UserID     kernel.UUID
	StoreID    kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}

var customerMessages = map[Status]string{
	Pending:        "Your order has been placed.",
	Accepted:       "Your order has been accepted by the store.",
	Preparing:      "Your pizza is being prepared.",
	ReadyForPickup: "Your order is ready and waiting for a delivery agent.",
	OutForDelivery: "Your order is on its way.",
	Delivered:      "Your order has been delivered. Enjoy!",
	Cancelled:      "Your order has been cancelled.",
	Refunded:       "Your order has been refunded.",
}

// Message is the customer-facing notification text for the new status.
func (e StatusChanged) Message() string {
	return customerMessages[e.To]
}
