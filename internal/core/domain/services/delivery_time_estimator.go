package services

import (
	"time"

	"pizzeria/internal/pkg/errs"
)

const (
	// DefaultPrepMinutes is the preparation time assumed for an empty item list.
	DefaultPrepMinutes = 15
	// DefaultDeliveryMinutes is the flat travel time. It does not depend on distance.
	DefaultDeliveryMinutes = 20
	// MaxEstimateMinutes caps preparation and total estimates at 30 days.
	MaxEstimateMinutes = 30 * 24 * 60
)

// PrepItem is the part of a line item the estimator needs.
type PrepItem struct {
	PrepMinutes int
	Quantity    int
}

// DeliveryEstimate is expressed in whole minutes.
type DeliveryEstimate struct {
	PreparationTime   int
	DeliveryTime      int
	TotalEstimate     int
	EstimatedDelivery time.Time
}

type DeliveryTimeEstimator struct {
	defaultPrepMinutes int
	deliveryMinutes    int
}

func NewDeliveryTimeEstimator(defaultPrepMinutes, deliveryMinutes int) (DeliveryTimeEstimator, error) {
	if defaultPrepMinutes < 0 || defaultPrepMinutes > MaxEstimateMinutes {
		return DeliveryTimeEstimator{}, errs.NewValueIsOutOfRangeError("default prep minutes", defaultPrepMinutes, 0, MaxEstimateMinutes)
	}
	if deliveryMinutes < 0 || deliveryMinutes > MaxEstimateMinutes {
		return DeliveryTimeEstimator{}, errs.NewValueIsOutOfRangeError("delivery minutes", deliveryMinutes, 0, MaxEstimateMinutes)
	}
	return DeliveryTimeEstimator{defaultPrepMinutes: defaultPrepMinutes, deliveryMinutes: deliveryMinutes}, nil
}

func NewDefaultDeliveryTimeEstimator() DeliveryTimeEstimator {
	return DeliveryTimeEstimator{defaultPrepMinutes: DefaultPrepMinutes, deliveryMinutes: DefaultDeliveryMinutes}
}

// DefaultPrepMinutes is the preparation time assumed when nothing better is known.
func (e DeliveryTimeEstimator) DefaultPrepMinutes() int {
	return e.defaultPrepMinutes
}

// Estimate sums prep × quantity over items, adds the travel time and projects
// the result from now. Sums saturate at MaxEstimateMinutes.
func (e DeliveryTimeEstimator) Estimate(items []PrepItem, now time.Time) DeliveryEstimate {
	prep := 0
	for _, item := range items {
		prep = saturatingAdd(prep, saturatingMul(item.PrepMinutes, item.Quantity))
	}
	if len(items) == 0 {
		prep = e.defaultPrepMinutes
	}

	total := saturatingAdd(prep, e.deliveryMinutes)
	return DeliveryEstimate{
		PreparationTime:   prep,
		DeliveryTime:      e.deliveryMinutes,
		TotalEstimate:     total,
		EstimatedDelivery: now.UTC().Add(time.Duration(total) * time.Minute),
	}
}

func saturatingMul(minutes, quantity int) int {
	if minutes <= 0 || quantity <= 0 {
		return 0
	}
	if minutes > MaxEstimateMinutes/quantity {
		return MaxEstimateMinutes
	}
	return minutes * quantity
}

func saturatingAdd(a, b int) int {
	if b > MaxEstimateMinutes-a {
		return MaxEstimateMinutes
	}
	return a + b
}
