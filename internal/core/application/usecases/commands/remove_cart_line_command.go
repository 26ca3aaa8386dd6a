package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand represents a request to delete one line from the
// user's cart.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a command to remove a cart line.
func NewRemoveCartLineCommand(userID, lineID kernel.UUID) (RemoveCartLineCommand, error) {
	cmd := RemoveCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setLineID(lineID),
	); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c RemoveCartLineCommand) UserID() kernel.UUID {
	return c.userID
}

// LineID returns the cart line to remove.
func (c RemoveCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveCartLineCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RemoveCartLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
