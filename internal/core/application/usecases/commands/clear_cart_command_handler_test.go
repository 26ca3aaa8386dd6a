package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	userCart := cartWithLine(t, userID, kernel.NewUUID(), 2)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUser", ctx, userID).Return(userCart, nil).Once(),
		cartRepo.On("Update", ctx, userCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewClearCartCommand(userID)
	require.NoError(t, err)

	h := commands.NewClearCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.True(t, userCart.IsEmpty())
}

func TestClearCartCommandHandler_Handle_NoCartIsNoOp(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("Rollback", ctx).Return(nil)
	cartRepo.On("GetByUser", ctx, userID).
		Return(nil, errs.NewObjectNotFoundError("cart", userID.String()))

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewClearCartCommand(userID)
	require.NoError(t, err)

	h := commands.NewClearCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
