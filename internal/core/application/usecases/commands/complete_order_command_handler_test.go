package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newArrivedOrder(t *testing.T, id, courierID kernel.UUID) *order.Order {
	t.Helper()
	o := newClaimedOrder(t, id, courierID)
	now := time.Now().UTC()
	require.NoError(t, o.AdvanceTo(courierID, order.ToPickup, now))
	require.NoError(t, o.AdvanceTo(courierID, order.ToDropoff, now))
	require.NoError(t, o.AdvanceTo(courierID, order.Arrived, now))
	return o
}

func TestNewCompleteOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		courierID := kernel.NewUUID()

		cmd, err := commands.NewCompleteOrderCommand(orderID, courierID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CourierID().IsEqual(courierID))
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCompleteOrderCommand(invalidID, kernel.NewUUID())
		require.Error(t, err)

		_, err = commands.NewCompleteOrderCommand(kernel.NewUUID(), invalidID)
		require.Error(t, err)
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd commands.CompleteOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteOrderCommandIsNotConstructed)
	})
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteOrderCommand(orderID, courierID)

	arrived := newArrivedOrder(t, orderID, courierID)

	orderRepo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(arrived, nil).Once(),
		orderRepo.On("Update", mock.Anything, arrived).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyClient", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, arrived.Status())
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotArrivedYet(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteOrderCommand(orderID, courierID)

	// Still en route to the drop-off point.
	enRoute := newClaimedOrder(t, orderID, courierID)
	require.NoError(t, enRoute.AdvanceTo(courierID, order.ToPickup, time.Now().UTC()))

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(enRoute, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, new(MockNotifier), discardLogger())
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.ToPickup, enRoute.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompleteOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	owner := kernel.NewUUID()
	intruder := kernel.NewUUID()
	cmd, _ := commands.NewCompleteOrderCommand(orderID, intruder)

	arrived := newArrivedOrder(t, orderID, owner)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(arrived, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, new(MockNotifier), discardLogger())
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrNotOwner)
	assert.Equal(t, order.Arrived, arrived.Status())
}
