package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("Sam Doe", "+1234567", "1 Main St", "Springfield", "49000", "US")
	require.NoError(t, err)
	return addr
}

func testPricing(t *testing.T) commands.DeliveryPricing {
	t.Helper()
	return commands.DeliveryPricing{
		ExpressFee:            money(t, 500),
		StandardFee:           money(t, 250),
		FreeDeliveryThreshold: money(t, 3000),
	}
}

func cartWithLine(t *testing.T, userID, productID kernel.UUID, quantity int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)
	_, err = c.AddLine(productID, quantity, "M", nil)
	require.NoError(t, err)
	return c
}

func orderWithLine(t *testing.T, userID kernel.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Denim Jacket", money(t, 1000), 2, "M", nil, "jacket.jpg")
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), "RC260900042", userID,
		[]order.Line{line}, testAddress(t), order.DeliveryStandard,
		money(t, 250), method, "", time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}
