package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/pkg/errs"
)

// UpdateCartLineCommandHandler handles cart line quantity changes.
type UpdateCartLineCommandHandler struct {
	uowFactory CartUoWFactory
	logger     *slog.Logger
}

// NewUpdateCartLineCommandHandler creates a handler for quantity updates.
func NewUpdateCartLineCommandHandler(uowFactory CartUoWFactory, logger *slog.Logger) UpdateCartLineCommandHandler {
	return UpdateCartLineCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "updateCartLine"),
	}
}

// Handle processes the quantity change. Returns an ObjectNotFoundError when
// the user has no cart or the line does not exist. A line whose product has
// since left the catalog is dropped from the cart, the drop is persisted, and
// the caller gets ErrProductUnavailable.
func (h *UpdateCartLineCommandHandler) Handle(ctx context.Context, cmd UpdateCartLineCommand) error {
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

	line, err := userCart.Line(cmd.LineID())
	if err != nil {
		return err
	}

	if cmd.Quantity() > 0 {
		if _, err = uow.ProductCatalog().GetProduct(ctx, line.ProductID()); err != nil {
			if !errors.Is(err, errs.ErrObjectNotFound) {
				return err
			}

			// The product vanished from the catalog. Heal the cart by
			// dropping the dead line and persist that state.
			if err = userCart.RemoveLine(cmd.LineID()); err != nil {
				return err
			}
			if err = cartRepo.Update(ctx, userCart); err != nil {
				return err
			}
			if err = uow.Commit(ctx); err != nil {
				return err
			}

			h.logger.WarnContext(ctx, "dropped cart line for missing product",
				"userId", cmd.UserID().String(),
				"productId", line.ProductID().String(),
			)
			return ErrProductUnavailable
		}
	}

	if _, err = userCart.UpdateLineQuantity(cmd.LineID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
