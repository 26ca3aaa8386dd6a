package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(userID, testAddress(t), "express", "card", "ring the bell")
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, order.DeliveryExpress, cmd.DeliveryOption())
	assert.Equal(t, order.PaymentMethodCard, cmd.PaymentMethod())
	assert.Equal(t, "ring the bell", cmd.Notes())
}

func TestNewCheckoutCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.UUID{}, testAddress(t), "standard", "card", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCheckoutCommand_UnknownDeliveryOption(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.NewUUID(), testAddress(t), "teleport", "card", "")
	require.Error(t, err)
}

func TestNewCheckoutCommand_EmptyPaymentMethod(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.NewUUID(), testAddress(t), "standard", "", "")
	require.Error(t, err)
}

func TestNewCheckoutCommand_UnconstructedAddress(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.NewUUID(), order.Address{}, "standard", "card", "")
	require.Error(t, err)
}
