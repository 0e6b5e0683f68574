package services_test

import (
	"math"
	"testing"
	"time"

	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryTimeEstimator_Estimate(t *testing.T) {
	estimator := services.NewDefaultDeliveryTimeEstimator()
	now := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	t.Run("sums prep times by quantity", func(t *testing.T) {
		est := estimator.Estimate([]services.PrepItem{
			{PrepMinutes: 12, Quantity: 2},
			{PrepMinutes: 5, Quantity: 1},
		}, now)

		assert.Equal(t, 29, est.PreparationTime)
		assert.Equal(t, 20, est.DeliveryTime)
		assert.Equal(t, 49, est.TotalEstimate)
		assert.Equal(t, now.Add(49*time.Minute), est.EstimatedDelivery)
	})

	t.Run("defaults prep time for empty items", func(t *testing.T) {
		est := estimator.Estimate(nil, now)

		assert.Equal(t, 15, est.PreparationTime)
		assert.Equal(t, 35, est.TotalEstimate)
		assert.Equal(t, now.Add(35*time.Minute), est.EstimatedDelivery)
	})

	t.Run("saturates huge prep times", func(t *testing.T) {
		est := estimator.Estimate([]services.PrepItem{
			{PrepMinutes: 100_000_000, Quantity: 100},
			{PrepMinutes: math.MaxInt, Quantity: math.MaxInt},
		}, now)

		assert.Equal(t, services.MaxEstimateMinutes, est.PreparationTime)
		assert.Equal(t, services.MaxEstimateMinutes, est.TotalEstimate)
		assert.Equal(t, now.Add(services.MaxEstimateMinutes*time.Minute), est.EstimatedDelivery)
	})

	t.Run("is pure", func(t *testing.T) {
		items := []services.PrepItem{{PrepMinutes: 10, Quantity: 1}}
		assert.Equal(t, estimator.Estimate(items, now), estimator.Estimate(items, now))
	})
}

func TestNewDeliveryTimeEstimator(t *testing.T) {
	estimator, err := services.NewDeliveryTimeEstimator(10, 30)
	require.NoError(t, err)
	assert.Equal(t, 40, estimator.Estimate(nil, time.Now()).TotalEstimate)

	assert.Equal(t, 10, estimator.DefaultPrepMinutes())

	_, err = services.NewDeliveryTimeEstimator(10, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewDeliveryTimeEstimator(services.MaxEstimateMinutes+1, 20)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
