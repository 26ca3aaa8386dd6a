package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCartLineCommandIsNotConstructed = errors.New(
	"UpdateCartLineCommand must be created via NewUpdateCartLineCommand constructor",
)

// UpdateCartLineCommand represents a request to change a cart line's quantity.
// A quantity of zero or less removes the line.
type UpdateCartLineCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	lineID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewUpdateCartLineCommand creates a command to change a cart line quantity.
// Any quantity is accepted; non-positive values mean removal.
func NewUpdateCartLineCommand(userID, lineID kernel.UUID, quantity int) (UpdateCartLineCommand, error) {
	cmd := UpdateCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setLineID(lineID),
	); err != nil {
		return UpdateCartLineCommand{}, err
	}
	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartLineCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c UpdateCartLineCommand) UserID() kernel.UUID {
	return c.userID
}

// LineID returns the cart line to change.
func (c UpdateCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the new quantity. Zero or less removes the line.
func (c UpdateCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartLineCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateCartLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
