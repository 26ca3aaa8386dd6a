package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// AddCartLineCommandHandler handles the business logic for adding to a cart.
// Creates the cart lazily on the user's first add and merges repeat adds of
// the same variant into one line.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartLineCommandHandler creates a handler for cart add operations.
func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command. Rejects products that no longer
// exist in the catalog with ErrProductUnavailable.
func (h *AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) error {
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

	product, err := uow.ProductCatalog().GetProduct(ctx, cmd.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrProductUnavailable
		}
		return err
	}

	// Advisory check only. Carts never reserve stock; this just rejects
	// obviously impossible quantities early. The binding check is the
	// conditional decrement at checkout.
	if cmd.Quantity() > product.AvailableStock {
		return &InsufficientStockError{ProductName: product.Name}
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, cmd.UserID())
	switch {
	case err == nil:
		if _, err = userCart.AddLine(cmd.ProductID(), cmd.Quantity(), cmd.Size(), cmd.Color()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, userCart); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		userCart, err = cart.NewCart(kernel.NewUUID(), cmd.UserID())
		if err != nil {
			return err
		}
		if _, err = userCart.AddLine(cmd.ProductID(), cmd.Quantity(), cmd.Size(), cmd.Color()); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, userCart); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
