package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The zero value is Unknown and is
// never valid.
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	Preparing
	ReadyForPickup
	OutForDelivery
	Delivered
	Cancelled
	Refunded
)

var statusNames = map[Status]string{
	Unknown:        "UNKNOWN",
	Pending:        "PENDING",
	Accepted:       "ACCEPTED",
	Preparing:      "PREPARING",
	ReadyForPickup: "READY_FOR_PICKUP",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
	Refunded:       "REFUNDED",
}

// transitions is the complete set of legal edges. Anything absent is rejected.
var transitions = map[Status][]Status{
	Pending:        {Accepted, Cancelled},
	Accepted:       {Preparing, Cancelled},
	Preparing:      {ReadyForPickup, Cancelled},
	ReadyForPickup: {OutForDelivery},
	OutForDelivery: {Delivered},
	Delivered:      {Refunded},
}

// ActiveKitchenStatuses are the statuses that occupy the kitchen.
var ActiveKitchenStatuses = []Status{Accepted, Preparing}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, Preparing, ReadyForPickup, OutForDelivery, Delivered, Cancelled, Refunded}
}

// ParseStatus accepts the upper-case wire names, case-insensitively.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if statusNames[status] == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known order status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no edge leaves the status.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether s → target is an edge of the state machine.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge is legal, otherwise an InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}

// MarshalText encodes the wire name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a wire name.
func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
