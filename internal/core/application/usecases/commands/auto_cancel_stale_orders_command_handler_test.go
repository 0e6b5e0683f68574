package commands_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReaperFixture(t *testing.T) (*MockOrderUoWFactory, *MockUoW, *MockOrderRepository) {
	t.Helper()
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Maybe()
	uow.On("Begin", ctx).Return(nil).Maybe()
	uow.On("Rollback", ctx).Return(nil).Maybe()
	uow.On("OrderRepository").Return(orderRepo).Maybe()
	return factory, uow, orderRepo
}

func TestNewAutoCancelStaleOrdersCommand(t *testing.T) {
	cmd, err := commands.NewAutoCancelStaleOrdersCommand(kernel.NewUUID(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cmd.StaleAfter())

	_, err = commands.NewAutoCancelStaleOrdersCommand(kernel.NewUUID(), -time.Minute)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestAutoCancelStaleOrdersCommandHandler_CancelsOnlyStale(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	stale := restoredOrder(t, storeID, order.Pending, testNow.Add(-31*time.Minute))
	fresh := restoredOrder(t, storeID, order.Pending, testNow.Add(-29*time.Minute))
	factory, uow, orderRepo := newReaperFixture(t)

	cutoff := testNow.Add(-30 * time.Minute)
	orderRepo.On("FindStale", ctx, storeID, cutoff).Return([]*order.Order{stale, fresh}, nil).Once()
	orderRepo.On("Update", ctx, orderWithID(stale.ID())).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, _ := commands.NewAutoCancelStaleOrdersCommand(storeID, 30*time.Minute)
	handler := commands.NewAutoCancelStaleOrdersCommandHandler(factory, fixedClock(testNow))
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{stale.ID()}, cancelled)
	assert.Equal(t, order.Cancelled, stale.Status())
	assert.Equal(t, order.Pending, fresh.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAutoCancelStaleOrdersCommandHandler_Idempotent(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	factory, uow, orderRepo := newReaperFixture(t)

	orderRepo.On("FindStale", ctx, storeID, mock.AnythingOfType("time.Time")).Return([]*order.Order{}, nil).Once()

	cmd, _ := commands.NewAutoCancelStaleOrdersCommand(storeID, 30*time.Minute)
	cancelled, err := commands.NewAutoCancelStaleOrdersCommandHandler(factory, fixedClock(testNow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotNil(t, cancelled)
	assert.Empty(t, cancelled)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAutoCancelStaleOrdersCommandHandler_SkipsOrdersThatMovedOn(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	accepted := restoredOrder(t, storeID, order.Pending, testNow.Add(-time.Hour))
	stale := restoredOrder(t, storeID, order.Pending, testNow.Add(-45*time.Minute))
	factory, uow, orderRepo := newReaperFixture(t)

	orderRepo.On("FindStale", ctx, storeID, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{accepted, stale}, nil).Once()
	orderRepo.On("Update", ctx, orderWithID(accepted.ID())).
		Return(errs.NewConcurrencyConflictError("order", accepted.ID(), order.Pending.String())).Once()
	orderRepo.On("Update", ctx, orderWithID(stale.ID())).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, _ := commands.NewAutoCancelStaleOrdersCommand(storeID, 30*time.Minute)
	cancelled, err := commands.NewAutoCancelStaleOrdersCommandHandler(factory, fixedClock(testNow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{stale.ID()}, cancelled)
}
