package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

type (
	CreateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*menu.Item, error)
	}
	CreateAgentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateAgentCommand) (*agent.Agent, error)
	}
	SetAgentActiveHandler interface {
		Handle(ctx context.Context, cmd commands.SetAgentActiveCommand) (*agent.Agent, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	TransitionOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (*order.Order, error)
	}
	AutoAssignDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.AutoAssignDeliveryCommand) (commands.AutoAssignResult, error)
	}
	UpdateDeliveryStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateDeliveryStatusCommand) (*delivery.Assignment, error)
	}
	AutoCancelStaleOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.AutoCancelStaleOrdersCommand) ([]kernel.UUID, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	ListAgentsHandler interface {
		Handle(ctx context.Context, query queries.ListAgentsQuery) ([]queries.ListAgentsQueryResponse, error)
	}
	KitchenWorkloadHandler interface {
		Handle(ctx context.Context, query queries.KitchenWorkloadQuery) (queries.KitchenWorkloadQueryResponse, error)
	}
	OptimizeKitchenQueueHandler interface {
		Handle(ctx context.Context, query queries.OptimizeKitchenQueueQuery) (queries.OptimizeKitchenQueueQueryResponse, error)
	}
	EstimateDeliveryTimeHandler interface {
		Handle(ctx context.Context, query queries.EstimateDeliveryTimeQuery) (services.DeliveryEstimate, error)
	}
)

// Handlers groups the use cases the API exposes.
type Handlers struct {
	CreateMenuItem        CreateMenuItemHandler
	CreateAgent           CreateAgentHandler
	SetAgentActive        SetAgentActiveHandler
	CreateOrder           CreateOrderHandler
	TransitionOrderStatus TransitionOrderStatusHandler
	AutoAssignDelivery    AutoAssignDeliveryHandler
	UpdateDeliveryStatus  UpdateDeliveryStatusHandler
	AutoCancelStaleOrders AutoCancelStaleOrdersHandler
	GetOrder              GetOrderHandler
	ListAgents            ListAgentsHandler
	KitchenWorkload       KitchenWorkloadHandler
	OptimizeKitchenQueue  OptimizeKitchenQueueHandler
	EstimateDeliveryTime  EstimateDeliveryTimeHandler
}

// Server maps HTTP requests onto command and query handlers.
type Server struct {
	handlers   Handlers
	staleAfter time.Duration
	newID      func() kernel.UUID
	logger     *slog.Logger
}

// NewServer creates the API server. staleAfter is used by auto-cancel-orders
// when the request does not carry its own threshold.
func NewServer(handlers Handlers, staleAfter time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers:   handlers,
		staleAfter: staleAfter,
		newID:      kernel.NewUUID,
		logger:     logger.With("component", "http"),
	}
}

// CreateMenuItem handles POST /api/v1/stores/{storeId}/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context, storeID kernel.UUID) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("invalid request body"))
	}

	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}
	available := true
	if body.Available != nil {
		available = *body.Available
	}

	cmd, err := commands.NewCreateMenuItemCommand(s.newID(), storeID, body.Name, price, body.PrepMinutes, available)
	if err != nil {
		return s.fail(ctx, err)
	}

	item, err := s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMenuItem(item))
}

// CreateAgent handles POST /api/v1/stores/{storeId}/agents.
func (s *Server) CreateAgent(ctx echo.Context, storeID kernel.UUID) error {
	var body NewAgent
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("invalid request body"))
	}

	cmd, err := commands.NewCreateAgentCommand(s.newID(), storeID, body.Name, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateAgent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAgent(created))
}

// ListAgents handles GET /api/v1/stores/{storeId}/agents.
func (s *Server) ListAgents(ctx echo.Context, storeID kernel.UUID, active *bool) error {
	query, err := queries.NewListAgentsQuery(storeID, active)
	if err != nil {
		return s.fail(ctx, err)
	}

	agents, err := s.handlers.ListAgents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgentList(agents))
}

// SetAgentActive handles PUT /api/v1/agents/{agentId}/active.
func (s *Server) SetAgentActive(ctx echo.Context, agentID kernel.UUID) error {
	var body AgentActivation
	if err := ctx.Bind(&body); err != nil || body.Active == nil {
		return s.fail(ctx, badRequest("invalid request body"))
	}

	cmd, err := commands.NewSetAgentActiveCommand(agentID, *body.Active)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.SetAgentActive.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgent(updated))
}

// CreateOrder handles POST /api/v1/stores/{storeId}/orders.
func (s *Server) CreateOrder(ctx echo.Context, storeID kernel.UUID) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("invalid request body"))
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	items := make([]commands.OrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return s.fail(ctx, err)
		}
		items = append(items, commands.OrderItem{MenuItemID: menuItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(s.newID(), storeID, userID, items, body.SpecialInstructions)
	if err != nil {
		return s.fail(ctx, err)
	}

	placed, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(placed))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(view))
}

// TransitionOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context, orderID kernel.UUID) error {
	var body StatusTransition
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("invalid request body"))
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.TransitionOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// GetKitchenWorkload handles GET /api/v1/stores/{storeId}/kitchen/workload.
func (s *Server) GetKitchenWorkload(ctx echo.Context, storeID kernel.UUID) error {
	query, err := queries.NewKitchenWorkloadQuery(storeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	workload, err := s.handlers.KitchenWorkload.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkload(workload))
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}
