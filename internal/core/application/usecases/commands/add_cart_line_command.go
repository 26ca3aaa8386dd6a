package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddCartLineCommandIsNotConstructed = errors.New(
	"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
)

// AddCartLineCommand represents a request to put a product variant into the
// user's cart. Adding an already-present (product, size, color) variant sums
// the quantities instead of duplicating the line.
//
// Example:
//
//	cmd, err := NewAddCartLineCommand(userID, productID, 2, "M", &blue)
//	if err != nil {
//	    return fmt.Errorf("invalid cart input: %w", err)
//	}
//
//	handler := NewAddCartLineCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int
	size      string
	color     *kernel.Color

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand creates a command to add a product variant to a cart.
// Validates that both identifiers are valid, quantity is positive, and a size
// is present. Color is optional.
func NewAddCartLineCommand(
	userID, productID kernel.UUID,
	quantity int,
	size string,
	color *kernel.Color,
) (AddCartLineCommand, error) {
	cmd := AddCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setSize(size),
		cmd.setColor(color),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c AddCartLineCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the product to add.
func (c AddCartLineCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the requested quantity.
func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

// Size returns the selected size.
func (c AddCartLineCommand) Size() string {
	return c.size
}

// Color returns the selected color, or nil.
func (c AddCartLineCommand) Color() *kernel.Color {
	return c.color
}

func (c *AddCartLineCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AddCartLineCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsRequiredError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *AddCartLineCommand) setSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}

	c.size = size
	return nil
}

func (c *AddCartLineCommand) setColor(color *kernel.Color) error {
	if color != nil {
		if err := color.Validate(); err != nil {
			return err
		}
	}

	c.color = color
	return nil
}
