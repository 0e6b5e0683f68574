package services_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	storeID = kernel.NewUUID()
	epoch   = time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
)

func orderWithPrep(t *testing.T, status order.Status, createdAt time.Time, prepMinutes ...int) *order.Order {
	t.Helper()

	items := make([]order.LineItem, 0, len(prepMinutes))
	for _, p := range prepMinutes {
		item, err := order.NewLineItem(kernel.NewUUID(), "pizza", 1, kernel.MustNewMoney(1000), p)
		require.NoError(t, err)
		items = append(items, item)
	}
	subtotal := kernel.MustNewMoney(int64(1000 * len(items)))

	o, err := order.RestoreOrder(order.Snapshot{
		ID:          kernel.NewUUID(),
		UserID:      kernel.NewUUID(),
		StoreID:     storeID,
		Items:       items,
		Status:      status,
		Subtotal:    subtotal,
		Tax:         kernel.ZeroMoney,
		DeliveryFee: kernel.ZeroMoney,
		Total:       subtotal,
		CreatedAt:   createdAt,
	})
	require.NoError(t, err)
	return o
}

func newAgent(t *testing.T, name string, createdAt time.Time) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), storeID, name, "", createdAt)
	require.NoError(t, err)
	return a
}
