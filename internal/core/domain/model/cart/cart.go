package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Cart is the aggregate root for a user's shopping cart. There is at most one
// cart per user; it is created lazily on first add and emptied, never deleted,
// on checkout.
//
// Invariants:
//   - at most one line per (product, size, color) variant
//   - every line quantity is >= 1
//   - line order is insertion order
type Cart struct {
	id     kernel.UUID
	userID kernel.UUID
	lines  []Line

	isConstructed bool
}

// NewCart creates an empty cart for the given user.
func NewCart(id, userID kernel.UUID) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		userID:        userID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence, re-validating every line.
func RestoreCart(id, userID kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(id, userID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	c.lines = append(c.lines, lines...)

	return c, nil
}

// Validate ensures the Cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Lines returns the cart's lines in insertion order.
// The returned slice is a copy; mutate the cart through its methods.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Line returns the line with the given identifier.
func (c *Cart) Line(lineID kernel.UUID) (Line, error) {
	for _, line := range c.lines {
		if line.ID().IsEqual(lineID) {
			return line, nil
		}
	}
	return Line{}, errs.NewObjectNotFoundError("cartLine", lineID.String())
}

// AddLine adds a product variant to the cart. If a line for the same
// (product, size, color) tuple already exists, the quantities are summed on
// the existing line; otherwise a new line is appended.
func (c *Cart) AddLine(productID kernel.UUID, quantity int, size string, color *kernel.Color) (Line, error) {
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	for i, existing := range c.lines {
		if existing.isSameVariant(productID, size, color) {
			merged := existing.withQuantity(existing.Quantity() + quantity)
			c.lines[i] = merged
			return merged, nil
		}
	}

	line, err := NewLine(kernel.NewUUID(), productID, quantity, size, color)
	if err != nil {
		return Line{}, err
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// UpdateLineQuantity replaces a line's quantity. A quantity of zero or less
// removes the line. Returns whether the line was removed.
func (c *Cart) UpdateLineQuantity(lineID kernel.UUID, quantity int) (bool, error) {
	for i, line := range c.lines {
		if !line.ID().IsEqual(lineID) {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true, nil
		}
		c.lines[i] = line.withQuantity(quantity)
		return false, nil
	}
	return false, errs.NewObjectNotFoundError("cartLine", lineID.String())
}

// RemoveLine deletes a line from the cart.
func (c *Cart) RemoveLine(lineID kernel.UUID) error {
	for i, line := range c.lines {
		if line.ID().IsEqual(lineID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cartLine", lineID.String())
}

// Clear atomically replaces the line list with an empty one.
// The cart itself lives on; carts are emptied, never deleted.
func (c *Cart) Clear() {
	c.lines = nil
}
