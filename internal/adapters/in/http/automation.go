package http

import (
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Automation actions accepted by POST /api/v1/automation/orders.
const (
	ActionAutoAssignDelivery   = "auto-assign-delivery"
	ActionUpdateDeliveryStatus = "update-delivery-status"
	ActionEstimateDeliveryTime = "estimate-delivery-time"
	ActionOptimizeKitchenQueue = "optimize-kitchen-queue"
	ActionAutoCancelOrders     = "auto-cancel-orders"
)

// RunOrderAutomation handles POST /api/v1/automation/orders and dispatches on
// the requested action.
func (s *Server) RunOrderAutomation(ctx echo.Context) error {
	var body AutomationRequest
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("invalid request body"))
	}

	var (
		result any
		err    error
	)
	switch body.Action {
	case ActionAutoAssignDelivery:
		result, err = s.autoAssignDelivery(ctx, body)
	case ActionUpdateDeliveryStatus:
		result, err = s.updateDeliveryStatus(ctx, body)
	case ActionEstimateDeliveryTime:
		result, err = s.estimateDeliveryTime(ctx, body)
	case ActionOptimizeKitchenQueue:
		result, err = s.optimizeKitchenQueue(ctx, body)
	case ActionAutoCancelOrders:
		result, err = s.autoCancelOrders(ctx, body)
	default:
		err = badRequest("unknown action " + body.Action)
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func (s *Server) autoAssignDelivery(ctx echo.Context, body AutomationRequest) (any, error) {
	storeID, err := requiredUUID("storeId", body.StoreID)
	if err != nil {
		return nil, err
	}
	orderID, err := optionalUUID(body.OrderID)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewAutoAssignDeliveryCommand(storeID, orderID)
	if err != nil {
		return nil, err
	}

	res, err := s.handlers.AutoAssignDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}
	return toAutoAssignResult(res), nil
}

func (s *Server) updateDeliveryStatus(ctx echo.Context, body AutomationRequest) (any, error) {
	storeID, err := requiredUUID("storeId", body.StoreID)
	if err != nil {
		return nil, err
	}
	orderID, err := requiredUUID("orderId", body.OrderID)
	if err != nil {
		return nil, err
	}
	if body.Status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	status, err := delivery.ParseStatus(body.Status)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(storeID, orderID, status, body.Notes)
	if err != nil {
		return nil, err
	}

	updated, err := s.handlers.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}
	return toAssignment(updated), nil
}

func (s *Server) estimateDeliveryTime(ctx echo.Context, body AutomationRequest) (any, error) {
	storeID, err := optionalUUID(body.StoreID)
	if err != nil {
		return nil, err
	}

	items := make([]queries.EstimateItem, 0, len(body.OrderItems))
	for _, item := range body.OrderItems {
		menuItemID, err := optionalUUID(item.MenuItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, queries.EstimateItem{
			MenuItemID:  menuItemID,
			PrepMinutes: item.PrepMinutes,
			Quantity:    item.Quantity,
		})
	}

	query, err := queries.NewEstimateDeliveryTimeQuery(storeID, items)
	if err != nil {
		return nil, err
	}

	estimate, err := s.handlers.EstimateDeliveryTime.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, err
	}
	return toDeliveryEstimate(estimate), nil
}

func (s *Server) optimizeKitchenQueue(ctx echo.Context, body AutomationRequest) (any, error) {
	storeID, err := requiredUUID("storeId", body.StoreID)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewOptimizeKitchenQueueQuery(storeID)
	if err != nil {
		return nil, err
	}

	res, err := s.handlers.OptimizeKitchenQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, err
	}
	return toKitchenQueue(res), nil
}

func (s *Server) autoCancelOrders(ctx echo.Context, body AutomationRequest) (any, error) {
	storeID, err := requiredUUID("storeId", body.StoreID)
	if err != nil {
		return nil, err
	}

	staleAfter := s.staleAfter
	if body.StaleAfterMinutes != nil {
		staleAfter = time.Duration(*body.StaleAfterMinutes) * time.Minute
	}

	cmd, err := commands.NewAutoCancelStaleOrdersCommand(storeID, staleAfter)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.handlers.AutoCancelStaleOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}
	if cancelled == nil {
		cancelled = []kernel.UUID{}
	}
	return AutoCancelResult{Cancelled: len(cancelled), OrderIDs: cancelled}, nil
}

func requiredUUID(name string, value *string) (kernel.UUID, error) {
	if value == nil || *value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func optionalUUID(value *string) (*kernel.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
