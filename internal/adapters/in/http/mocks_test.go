package http

import (
	"context"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockCreateMenuItemHandler struct{ mock.Mock }

func (m *MockCreateMenuItemHandler) Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*menu.Item, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

type MockCreateAgentHandler struct{ mock.Mock }

func (m *MockCreateAgentHandler) Handle(ctx context.Context, cmd commands.CreateAgentCommand) (*agent.Agent, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

type MockSetAgentActiveHandler struct{ mock.Mock }

func (m *MockSetAgentActiveHandler) Handle(ctx context.Context, cmd commands.SetAgentActiveCommand) (*agent.Agent, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockTransitionOrderStatusHandler struct{ mock.Mock }

func (m *MockTransitionOrderStatusHandler) Handle(
	ctx context.Context, cmd commands.TransitionOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAutoAssignDeliveryHandler struct{ mock.Mock }

func (m *MockAutoAssignDeliveryHandler) Handle(
	ctx context.Context, cmd commands.AutoAssignDeliveryCommand,
) (commands.AutoAssignResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AutoAssignResult), args.Error(1)
}

type MockUpdateDeliveryStatusHandler struct{ mock.Mock }

func (m *MockUpdateDeliveryStatusHandler) Handle(
	ctx context.Context, cmd commands.UpdateDeliveryStatusCommand,
) (*delivery.Assignment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Assignment), args.Error(1)
}

type MockAutoCancelStaleOrdersHandler struct{ mock.Mock }

func (m *MockAutoCancelStaleOrdersHandler) Handle(
	ctx context.Context, cmd commands.AutoCancelStaleOrdersCommand,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockListAgentsHandler struct{ mock.Mock }

func (m *MockListAgentsHandler) Handle(
	ctx context.Context, query queries.ListAgentsQuery,
) ([]queries.ListAgentsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ListAgentsQueryResponse), args.Error(1)
}

type MockKitchenWorkloadHandler struct{ mock.Mock }

func (m *MockKitchenWorkloadHandler) Handle(
	ctx context.Context, query queries.KitchenWorkloadQuery,
) (queries.KitchenWorkloadQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.KitchenWorkloadQueryResponse), args.Error(1)
}

type MockOptimizeKitchenQueueHandler struct{ mock.Mock }

func (m *MockOptimizeKitchenQueueHandler) Handle(
	ctx context.Context, query queries.OptimizeKitchenQueueQuery,
) (queries.OptimizeKitchenQueueQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OptimizeKitchenQueueQueryResponse), args.Error(1)
}

type MockEstimateDeliveryTimeHandler struct{ mock.Mock }

func (m *MockEstimateDeliveryTimeHandler) Handle(
	ctx context.Context, query queries.EstimateDeliveryTimeQuery,
) (services.DeliveryEstimate, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(services.DeliveryEstimate), args.Error(1)
}

type handlerMocks struct {
	createMenuItem        *MockCreateMenuItemHandler
	createAgent           *MockCreateAgentHandler
	setAgentActive        *MockSetAgentActiveHandler
	createOrder           *MockCreateOrderHandler
	transitionOrderStatus *MockTransitionOrderStatusHandler
	autoAssignDelivery    *MockAutoAssignDeliveryHandler
	updateDeliveryStatus  *MockUpdateDeliveryStatusHandler
	autoCancelStaleOrders *MockAutoCancelStaleOrdersHandler
	getOrder              *MockGetOrderHandler
	listAgents            *MockListAgentsHandler
	kitchenWorkload       *MockKitchenWorkloadHandler
	optimizeKitchenQueue  *MockOptimizeKitchenQueueHandler
	estimateDeliveryTime  *MockEstimateDeliveryTimeHandler
}

func newHandlerMocks() *handlerMocks {
	return &handlerMocks{
		createMenuItem:        &MockCreateMenuItemHandler{},
		createAgent:           &MockCreateAgentHandler{},
		setAgentActive:        &MockSetAgentActiveHandler{},
		createOrder:           &MockCreateOrderHandler{},
		transitionOrderStatus: &MockTransitionOrderStatusHandler{},
		autoAssignDelivery:    &MockAutoAssignDeliveryHandler{},
		updateDeliveryStatus:  &MockUpdateDeliveryStatusHandler{},
		autoCancelStaleOrders: &MockAutoCancelStaleOrdersHandler{},
		getOrder:              &MockGetOrderHandler{},
		listAgents:            &MockListAgentsHandler{},
		kitchenWorkload:       &MockKitchenWorkloadHandler{},
		optimizeKitchenQueue:  &MockOptimizeKitchenQueueHandler{},
		estimateDeliveryTime:  &MockEstimateDeliveryTimeHandler{},
	}
}

func (m *handlerMocks) handlers() Handlers {
	return Handlers{
		CreateMenuItem:        m.createMenuItem,
		CreateAgent:           m.createAgent,
		SetAgentActive:        m.setAgentActive,
		CreateOrder:           m.createOrder,
		TransitionOrderStatus: m.transitionOrderStatus,
		AutoAssignDelivery:    m.autoAssignDelivery,
		UpdateDeliveryStatus:  m.updateDeliveryStatus,
		AutoCancelStaleOrders: m.autoCancelStaleOrders,
		GetOrder:              m.getOrder,
		ListAgents:            m.listAgents,
		KitchenWorkload:       m.kitchenWorkload,
		OptimizeKitchenQueue:  m.optimizeKitchenQueue,
		EstimateDeliveryTime:  m.estimateDeliveryTime,
	}
}
