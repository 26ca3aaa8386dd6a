package commands

import (
	"context"
	"errors"

	"storefront/internal/pkg/errs"
)

// ClearCartCommandHandler handles emptying a cart.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle empties the cart. Clearing a cart that was never created is a no-op;
// the user sees an empty cart either way.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	userCart.Clear()
	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
