package commands

import (
	"context"
)

// RemoveCartLineCommandHandler handles cart line removal.
type RemoveCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartLineCommandHandler creates a handler for cart line removal.
func NewRemoveCartLineCommandHandler(uowFactory CartUoWFactory) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the line. Returns an ObjectNotFoundError when the user has no
// cart or the line does not exist.
func (h *RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
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
		return err
	}

	if err = userCart.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
