package queries

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetCartQueryHandler reads the user's cart and prices it against the live
// catalog. This is the one self-healing read in the system: lines whose
// product has left the catalog are dropped and the pruned state is persisted,
// so the cart converges instead of failing forever.
type GetCartQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewGetCartQueryHandler creates a handler for cart reads. It takes a unit of
// work factory rather than a bare connection because a read may write back the
// pruned line list.
func NewGetCartQueryHandler(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) GetCartQueryHandler {
	return GetCartQueryHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "getCart"),
	}
}

// Handle returns the cart view. A user who never added anything gets an empty
// view, not an error. Dropped lines are logged, never surfaced as a failure.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CartView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, query.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CartView{Lines: []CartLineView{}}, nil
		}
		return CartView{}, err
	}

	catalog := uow.ProductCatalog()
	view := CartView{Lines: make([]CartLineView, 0, len(userCart.Lines()))}
	healed := false

	for _, line := range userCart.Lines() {
		product, err := catalog.GetProduct(ctx, line.ProductID())
		if err != nil {
			if !errors.Is(err, errs.ErrObjectNotFound) {
				return CartView{}, err
			}

			if err = userCart.RemoveLine(line.ID()); err != nil {
				return CartView{}, err
			}
			healed = true
			h.logger.WarnContext(ctx, "dropped cart line for missing product",
				"userId", query.UserID().String(),
				"productId", line.ProductID().String(),
			)
			continue
		}

		lineView := CartLineView{
			LineID:         line.ID().String(),
			ProductID:      product.ID.String(),
			Name:           product.Name,
			UnitPrice:      product.Price.Amount(),
			Quantity:       line.Quantity(),
			Size:           line.Size(),
			Image:          product.Image,
			Subtotal:       product.Price.MultiplyBy(line.Quantity()).Amount(),
			AvailableStock: product.AvailableStock,
		}
		if color := line.Color(); color != nil {
			lineView.Color = &ColorView{Name: color.Name(), Hex: color.Hex()}
		}

		view.Lines = append(view.Lines, lineView)
		view.Subtotal += lineView.Subtotal
	}

	if healed {
		if err = cartRepo.Update(ctx, userCart); err != nil {
			return CartView{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return CartView{}, err
		}
	}

	return view, nil
}
