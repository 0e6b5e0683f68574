package http

import (
	"net/http"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const automationURL = "/api/v1/automation/orders"

func TestAutomation_AutoAssignDelivery(t *testing.T) {
	assignment, err := delivery.NewAssignment(kernel.NewUUID(), orderID, storeID, agentID, baseNow, 5*time.Minute)
	require.NoError(t, err)

	mocks := newHandlerMocks()
	mocks.autoAssignDelivery.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AutoAssignDeliveryCommand) bool {
		_, single := cmd.OrderID()
		return cmd.StoreID() == storeID && !single
	})).Return(commands.AutoAssignResult{
		Assigned:    1,
		Assignments: []*delivery.Assignment{assignment},
	}, nil).Once()
	e := newTestRouter(t, mocks)

	rec := doRequest(e, http.MethodPost, automationURL,
		`{"action":"auto-assign-delivery","storeId":"`+storeID.String()+`"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[AutoAssignResult](t, rec)
	assert.Equal(t, 1, got.Assigned)
	require.Len(t, got.Assignments, 1)
	assert.Equal(t, agentID, got.Assignments[0].AgentID)
	assert.Equal(t, delivery.Assigned, got.Assignments[0].Status)
	assert.Equal(t, baseNow.Add(5*time.Minute), got.Assignments[0].PickupTime)
	mocks.autoAssignDelivery.AssertExpectations(t)
}

func TestAutomation_AutoAssignSingleOrderNotFound(t *testing.T) {
	mocks := newHandlerMocks()
	mocks.autoAssignDelivery.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AutoAssignDeliveryCommand) bool {
		id, single := cmd.OrderID()
		return single && id == orderID
	})).Return(commands.AutoAssignResult{}, errs.NewObjectNotFoundError("order", orderID)).Once()
	e := newTestRouter(t, mocks)

	rec := doRequest(e, http.MethodPost, automationURL,
		`{"action":"auto-assign-delivery","storeId":"`+storeID.String()+`","orderId":"`+orderID.String()+`"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mocks.autoAssignDelivery.AssertExpectations(t)
}

func TestAutomation_UpdateDeliveryStatus(t *testing.T) {
	assignment, err := delivery.NewAssignment(kernel.NewUUID(), orderID, storeID, agentID, baseNow, 5*time.Minute)
	require.NoError(t, err)
	require.NoError(t, assignment.Advance(delivery.PickedUp, baseNow.Add(7*time.Minute), "left the store"))

	mocks := newHandlerMocks()
	mocks.updateDeliveryStatus.On("Handle", mock.Anything,
		mock.MatchedBy(func(cmd commands.UpdateDeliveryStatusCommand) bool {
			return cmd.OrderID() == orderID && cmd.Status() == delivery.PickedUp && cmd.Notes() == "left the store"
		})).Return(assignment, nil).Once()
	e := newTestRouter(t, mocks)

	rec := doRequest(e, http.MethodPost, automationURL,
		`{"action":"update-delivery-status","storeId":"`+storeID.String()+`","orderId":"`+orderID.String()+
			`","status":"picked_up","notes":"left the store"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[Assignment](t, rec)
	assert.Equal(t, delivery.PickedUp, got.Status)
	assert.Equal(t, "left the store", got.Notes)
	mocks.updateDeliveryStatus.AssertExpectations(t)
}

func TestAutomation_MissingParameters(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown action", body: `{"action":"reheat"}`},
		{name: "auto-assign without store", body: `{"action":"auto-assign-delivery"}`},
		{name: "update without order", body: `{"action":"update-delivery-status","storeId":"` + storeID.String() + `","status":"delivered"}`},
		{name: "update without status", body: `{"action":"update-delivery-status","storeId":"` + storeID.String() + `","orderId":"` + orderID.String() + `"}`},
		{name: "optimize without store", body: `{"action":"optimize-kitchen-queue"}`},
		{name: "cancel without store", body: `{"action":"auto-cancel-orders"}`},
		{name: "malformed store id", body: `{"action":"auto-cancel-orders","storeId":"store-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestRouter(t, newHandlerMocks())

			rec := doRequest(e, http.MethodPost, automationURL, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, http.StatusBadRequest, decode[Error](t, rec).Code)
		})
	}
}

func TestAutomation_EstimateDeliveryTime(t *testing.T) {
	mocks := newHandlerMocks()
	mocks.estimateDeliveryTime.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.EstimateDeliveryTimeQuery) bool {
		_, scoped := q.StoreID()
		items := q.Items()
		return !scoped && len(items) == 2 &&
			items[0].MenuItemID != nil && *items[0].MenuItemID == itemID &&
			items[1].PrepMinutes != nil && *items[1].PrepMinutes == 8
	})).Return(services.DeliveryEstimate{
		PreparationTime:   38,
		DeliveryTime:      20,
		TotalEstimate:     58,
		EstimatedDelivery: baseNow.Add(58 * time.Minute),
	}, nil).Once()
	e := newTestRouter(t, mocks)

	rec := doRequest(e, http.MethodPost, automationURL,
		`{"action":"estimate-delivery-time","orderItems":[{"menuItemId":"`+itemID.String()+
			`","quantity":2},{"prepMinutes":8,"quantity":1}]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[DeliveryEstimate](t, rec)
	assert.Equal(t, 58, got.TotalEstimate)
	assert.Equal(t, baseNow.Add(58*time.Minute), got.EstimatedDelivery)
	mocks.estimateDeliveryTime.AssertExpectations(t)
}

func TestAutomation_OptimizeKitchenQueue(t *testing.T) {
	first, second := kernel.NewUUID(), kernel.NewUUID()

	mocks := newHandlerMocks()
	mocks.optimizeKitchenQueue.On("Handle", mock.Anything, mock.Anything).Return(queries.OptimizeKitchenQueueQueryResponse{
		OriginalQueueLength: 2,
		OptimizedQueue: []services.QueueEntry{
			{Position: 1, OrderID: first, Status: order.Accepted, PrepTime: 5, CreatedAt: baseNow.Add(time.Minute)},
			{Position: 2, OrderID: second, Status: order.Preparing, PrepTime: 20, CreatedAt: baseNow},
		},
	}, nil).Once()
	e := newTestRouter(t, mocks)

	rec := doRequest(e, http.MethodPost, automationURL,
		`{"action":"optimize-kitchen-queue","storeId":"`+storeID.String()+`"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[KitchenQueue](t, rec)
	assert.Equal(t, 2, got.OriginalQueueLength)
	require.Len(t, got.OptimizedQueue, 2)
	assert.Equal(t, first, got.OptimizedQueue[0].OrderID)
	assert.Equal(t, 5, got.OptimizedQueue[0].EstimatedPrepTime)
	assert.Equal(t, 2, got.OptimizedQueue[1].Position)
}

func TestAutomation_AutoCancelOrders(t *testing.T) {
	cancelled := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	tests := []struct {
		name           string
		body           string
		wantStaleAfter time.Duration
		result         []kernel.UUID
	}{
		{
			name:           "server default threshold",
			body:           `{"action":"auto-cancel-orders","storeId":"` + storeID.String() + `"}`,
			wantStaleAfter: 45 * time.Minute,
			result:         cancelled,
		},
		{
			name:           "request threshold",
			body:           `{"action":"auto-cancel-orders","storeId":"` + storeID.String() + `","staleAfterMinutes":10}`,
			wantStaleAfter: 10 * time.Minute,
			result:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newHandlerMocks()
			mocks.autoCancelStaleOrders.On("Handle", mock.Anything,
				mock.MatchedBy(func(cmd commands.AutoCancelStaleOrdersCommand) bool {
					return cmd.StoreID() == storeID && cmd.StaleAfter() == tt.wantStaleAfter
				})).Return(tt.result, nil).Once()
			e := newTestRouter(t, mocks)

			rec := doRequest(e, http.MethodPost, automationURL, tt.body)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			got := decode[AutoCancelResult](t, rec)
			assert.Equal(t, len(tt.result), got.Cancelled)
			assert.NotNil(t, got.OrderIDs)
			assert.Len(t, got.OrderIDs, len(tt.result))
			mocks.autoCancelStaleOrders.AssertExpectations(t)
		})
	}
}
