// Package order implements the Order aggregate of the storefront: priced line
// items, the amounts derived from them and the status state machine.
//
//	PENDING ──> ACCEPTED ──> PREPARING ──> READY_FOR_PICKUP ──> OUT_FOR_DELIVERY ──> DELIVERED ──> REFUNDED
//	   │           │             │
//	   └───────────┴─────────────┴──> CANCELLED
//
// Every accepted transition records a StatusChanged event that the persistence
// layer publishes once the surrounding transaction commits.
package order
