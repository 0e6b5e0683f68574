package commands_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAssignment(t *testing.T, storeID, orderID kernel.UUID) *delivery.Assignment {
	t.Helper()
	a, err := delivery.NewAssignment(kernel.NewUUID(), orderID, storeID, kernel.NewUUID(),
		testNow.Add(-20*time.Minute), delivery.DefaultPickupLead)
	require.NoError(t, err)
	return a
}

func TestNewUpdateDeliveryStatusCommand(t *testing.T) {
	_, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), kernel.NewUUID(), delivery.Assigned, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), kernel.NewUUID(), delivery.PickedUp, " gate code 12 ")
	require.NoError(t, err)
	assert.Equal(t, "gate code 12", cmd.Notes())
}

func TestUpdateDeliveryStatusCommandHandler_PickedUp(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	assignment := newTestAssignment(t, storeID, orderID)
	f := newAssignFixture(t)

	f.assignmentRepo.On("GetByStoreAndOrder", ctx, storeID, orderID).Return(assignment, nil).Once()
	f.assignmentRepo.On("Update", ctx, assignment).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, _ := commands.NewUpdateDeliveryStatusCommand(storeID, orderID, delivery.PickedUp, "")
	handler := commands.NewUpdateDeliveryStatusCommandHandler(f.factory, fixedClock(testNow))
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, updated.Status())
	assert.Equal(t, testNow, updated.PickupTime())
	f.uow.AssertNotCalled(t, "OrderRepository")
	f.uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_DeliveredMovesOrder(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	o := restoredOrder(t, storeID, order.OutForDelivery, testNow.Add(-time.Hour))
	assignment := newTestAssignment(t, storeID, o.ID())
	f := newAssignFixture(t)

	mock.InOrder(
		f.assignmentRepo.On("GetByStoreAndOrder", ctx, storeID, o.ID()).Return(assignment, nil).Once(),
		f.assignmentRepo.On("Update", ctx, assignment).Return(nil).Once(),
		f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.orderRepo.On("Update", ctx, orderWithID(o.ID())).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	cmd, _ := commands.NewUpdateDeliveryStatusCommand(storeID, o.ID(), delivery.Delivered, "left with concierge")
	handler := commands.NewUpdateDeliveryStatusCommandHandler(f.factory, fixedClock(testNow))
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, updated.Status())
	require.NotNil(t, updated.DeliveryTime())
	assert.Equal(t, testNow, *updated.DeliveryTime())
	assert.Equal(t, "left with concierge", updated.Notes())
	assert.Equal(t, order.Delivered, o.Status())
	require.NotNil(t, o.ActualDelivery())
	assert.Equal(t, testNow, *o.ActualDelivery())
}

func TestUpdateDeliveryStatusCommandHandler_MissingAssignment(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	f := newAssignFixture(t)

	f.assignmentRepo.On("GetByStoreAndOrder", ctx, storeID, orderID).
		Return(nil, errs.NewObjectNotFoundError("delivery assignment", orderID)).Once()

	cmd, _ := commands.NewUpdateDeliveryStatusCommand(storeID, orderID, delivery.Delivered, "")
	_, err := commands.NewUpdateDeliveryStatusCommandHandler(f.factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_OrderNotOutForDelivery(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	o := restoredOrder(t, storeID, order.Cancelled, testNow.Add(-time.Hour))
	assignment := newTestAssignment(t, storeID, o.ID())
	f := newAssignFixture(t)

	f.assignmentRepo.On("GetByStoreAndOrder", ctx, storeID, o.ID()).Return(assignment, nil).Once()
	f.assignmentRepo.On("Update", ctx, assignment).Return(nil).Once()
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, _ := commands.NewUpdateDeliveryStatusCommand(storeID, o.ID(), delivery.Delivered, "")
	_, err := commands.NewUpdateDeliveryStatusCommandHandler(f.factory, fixedClock(testNow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	assignment := newTestAssignment(t, storeID, orderID)
	require.NoError(t, assignment.MarkDelivered(testNow, ""))
	f := newAssignFixture(t)

	f.assignmentRepo.On("GetByStoreAndOrder", ctx, storeID, orderID).Return(assignment, nil).Once()

	cmd, _ := commands.NewUpdateDeliveryStatusCommand(storeID, orderID, delivery.PickedUp, "")
	_, err := commands.NewUpdateDeliveryStatusCommandHandler(f.factory, fixedClock(testNow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	f.assignmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
