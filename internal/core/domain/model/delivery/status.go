// Package delivery models the binding of a ready order to a delivery agent and
// the progress of that delivery.
package delivery

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Status of a delivery assignment. Wire names are lower_snake_case.
type Status int

const (
	Unknown Status = iota
	Assigned
	PickedUp
	Delivered
)

var statusNames = map[Status]string{
	Unknown:   "unknown",
	Assigned:  "assigned",
	PickedUp:  "picked_up",
	Delivered: "delivered",
}

// Assigned may skip the pickup scan and go straight to Delivered.
var transitions = map[Status][]Status{
	Assigned: {PickedUp, Delivered},
	PickedUp: {Delivered},
}

func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range statusNames {
		if status != Unknown && name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%q is not a known delivery status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
