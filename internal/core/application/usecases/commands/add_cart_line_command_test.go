package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartLineCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	productID := kernel.NewUUID()
	blue, err := kernel.NewColor("Blue", "#0000FF")
	require.NoError(t, err)

	cmd, err := commands.NewAddCartLineCommand(userID, productID, 2, "M", &blue)
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 2, cmd.Quantity())
	assert.Equal(t, "M", cmd.Size())
	require.NotNil(t, cmd.Color())
	assert.True(t, cmd.Color().IsEqual(blue))
}

func TestNewAddCartLineCommand_NoColor(t *testing.T) {
	cmd, err := commands.NewAddCartLineCommand(kernel.NewUUID(), kernel.NewUUID(), 1, "L", nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.Color())
}

func TestNewAddCartLineCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddCartLineCommand(kernel.NewUUID(), kernel.NewUUID(), 0, "M", nil)
	require.Error(t, err)
}

func TestNewAddCartLineCommand_EmptySize(t *testing.T) {
	_, err := commands.NewAddCartLineCommand(kernel.NewUUID(), kernel.NewUUID(), 1, "", nil)
	require.Error(t, err)
}

func TestNewAddCartLineCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewAddCartLineCommand(kernel.UUID{}, kernel.NewUUID(), 1, "M", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
