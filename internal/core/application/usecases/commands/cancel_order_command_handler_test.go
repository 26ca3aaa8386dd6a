package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := orderWithLine(t, userID, order.PaymentMethodCard)
	productID := aggregate.Lines()[0].ProductID()

	orderRepo := new(MockOrderRepository)
	inventory := new(MockInventoryRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventory).Once(),
		inventory.On("Release", ctx, productID, 2).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCancelOrderCommand(userID, aggregate.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.NotNil(t, aggregate.CancelledAt())
	mock.AssertExpectationsForObjects(t, orderRepo, inventory, outbox, uow, factory)
}

func TestCancelOrderCommandHandler_Handle_NotOwnerLooksLikeMissing(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	intruder := kernel.NewUUID()
	aggregate := orderWithLine(t, owner, order.PaymentMethodCard)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewCancelOrderCommand(intruder, aggregate.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.Pending, aggregate.Status(), "foreign order must stay untouched")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelledIsNoOp(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := orderWithLine(t, userID, order.PaymentMethodCard)
	_, err := aggregate.Cancel(false, time.Now().UTC())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewCancelOrderCommand(userID, aggregate.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "InventoryRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ShippedCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := orderWithLine(t, userID, order.PaymentMethodCard)
	now := time.Now().UTC()
	for _, target := range []order.Status{order.Confirmed, order.Processing, order.Shipped} {
		_, err := aggregate.ChangeStatus(target, now)
		require.NoError(t, err)
	}

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewCancelOrderCommand(userID, aggregate.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrIllegalTransition)
	assert.Equal(t, order.Shipped, aggregate.Status())
}
