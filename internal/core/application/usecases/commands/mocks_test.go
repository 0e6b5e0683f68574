package commands_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStoreAndStatuses(
	ctx context.Context, storeID kernel.UUID, statuses []order.Status, limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, storeID, statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindStale(ctx context.Context, storeID kernel.UUID, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, storeID, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) FindActiveByStore(ctx context.Context, storeID kernel.UUID) ([]*agent.Agent, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.Agent), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *delivery.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *delivery.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByStoreAndOrder(
	ctx context.Context, storeID, orderID kernel.UUID,
) (*delivery.Assignment, error) {
	args := m.Called(ctx, storeID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Assignment), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) GetMany(
	ctx context.Context, storeID kernel.UUID, ids []kernel.UUID,
) (map[kernel.UUID]*menu.Item, error) {
	args := m.Called(ctx, storeID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*menu.Item), args.Error(1)
}

type MockDispatchCursor struct{ mock.Mock }

func (m *MockDispatchCursor) Reserve(ctx context.Context, storeID kernel.UUID, n int64) (int64, error) {
	args := m.Called(ctx, storeID, n)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) DispatchCursor() ports.DispatchCursor {
	args := m.Called()
	return args.Get(0).(ports.DispatchCursor)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

type MockAgentUoWFactory struct{ mock.Mock }

func (m *MockAgentUoWFactory) Create() commands.AgentUoW {
	args := m.Called()
	return args.Get(0).(commands.AgentUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

var testNow = time.Date(2026, 4, 2, 19, 30, 0, 0, time.UTC)

func fixedClock(at time.Time) commands.Clock {
	return func() time.Time { return at }
}

// restoredOrder builds a persisted order of storeID in status, created at createdAt.
func restoredOrder(t *testing.T, storeID kernel.UUID, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()

	line, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 1, kernel.MustNewMoney(1200), 12)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Snapshot{
		ID:          kernel.NewUUID(),
		UserID:      kernel.NewUUID(),
		StoreID:     storeID,
		Items:       []order.LineItem{line},
		Status:      status,
		Subtotal:    kernel.MustNewMoney(1200),
		Tax:         kernel.MustNewMoney(96),
		DeliveryFee: kernel.MustNewMoney(300),
		Total:       kernel.MustNewMoney(1596),
		CreatedAt:   createdAt,
	})
	require.NoError(t, err)
	return o
}

func orderWithID(id kernel.UUID) any {
	return mock.MatchedBy(func(o *order.Order) bool { return o.ID().IsEqual(id) })
}
