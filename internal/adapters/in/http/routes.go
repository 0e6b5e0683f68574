package http

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// serverWrapper converts path and query parameters before calling the Server.
type serverWrapper struct {
	server *Server
}

// RegisterHandlers mounts the API routes under baseURL.
func RegisterHandlers(router EchoRouter, server *Server, baseURL string) {
	w := serverWrapper{server: server}

	router.POST(baseURL+"/stores/:storeId/menu-items", w.CreateMenuItem)
	router.POST(baseURL+"/stores/:storeId/agents", w.CreateAgent)
	router.GET(baseURL+"/stores/:storeId/agents", w.ListAgents)
	router.PUT(baseURL+"/agents/:agentId/active", w.SetAgentActive)
	router.POST(baseURL+"/stores/:storeId/orders", w.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", w.GetOrder)
	router.POST(baseURL+"/orders/:orderId/status", w.TransitionOrderStatus)
	router.GET(baseURL+"/stores/:storeId/kitchen/workload", w.GetKitchenWorkload)
	router.POST(baseURL+"/automation/orders", w.RunOrderAutomation)
}

func (w serverWrapper) CreateMenuItem(ctx echo.Context) error {
	storeID, err := w.pathUUID(ctx, "storeId")
	if err != nil {
		return w.server.fail(ctx, err)
	}
	return w.server.CreateMenuItem(ctx, storeID)
}

func (w serverWrapper) CreateAgent(ctx echo.Context) error {
	storeID, err := w.pathUUID(ctx, "storeId")
	if err != nil {
		return w.server.fail(ctx, err)
	}
	return w.server.CreateAgent(ctx, storeID)
}

func (w serverWrapper) ListAgents(ctx echo.Context) error {
	storeID, err := w.pathUUID(ctx, "storeId")
	if err != nil {
		return w.server.fail(ctx, err)
	}

	var active *bool
	if err := runtime.BindQueryParameter("form", true, false, "active", ctx.QueryParams(), &active); err != nil {
		return w.server.fail(ctx, badRequest(fmt.Sprintf("invalid format for parameter active: %s", err)))
	}

	return w.server.ListAgents(ctx, storeID, active)
}

func (w serverWrapper) SetAgentActive(ctx echo.Context) error {
	agentID, err := w.pathUUID(ctx, "agentId")
	if err != nil {
		return w.server.fail(ctx, err)
	}
	return w.server.SetAgentActive(ctx, agentID)
}

func (w serverWrapper) CreateOrder(ctx echo.Context) error {
	storeID, err := w.pathUUID(ctx, "storeId")
	if err != nil {
		return w.server.fail(ctx, err)
	}
	return w.server.CreateOrder(ctx, storeID)
}

func (w serverWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := w.pathUUID(ctx, "orderId")
	if err != nil {
		return w.server.fail(ctx, err)
	}
	return w.server.GetOrder(ctx, orderID)
}

func (w serverWrapper) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := w.pathUUID(ctx, "orderId")
	if err != nil {
		return w.server.fail(ctx, err)
	}
	return w.server.TransitionOrderStatus(ctx, orderID)
}

func (w serverWrapper) GetKitchenWorkload(ctx echo.Context) error {
	storeID, err := w.pathUUID(ctx, "storeId")
	if err != nil {
		return w.server.fail(ctx, err)
	}
	return w.server.GetKitchenWorkload(ctx, storeID)
}

func (w serverWrapper) RunOrderAutomation(ctx echo.Context) error {
	return w.server.RunOrderAutomation(ctx)
}

func (w serverWrapper) pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequest(fmt.Sprintf("invalid format for parameter %s: %s", name, err))
	}

	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, badRequest(fmt.Sprintf("invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}
