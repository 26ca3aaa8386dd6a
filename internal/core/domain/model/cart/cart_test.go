package cart_test

import (
	"testing"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func colorPtr(t *testing.T, name, hex string) *kernel.Color {
	t.Helper()
	c, err := kernel.NewColor(name, hex)
	require.NoError(t, err)
	return &c
}

func TestNewCart_Validation(t *testing.T) {
	t.Run("requires ids", func(t *testing.T) {
		var zero kernel.UUID
		_, err := cart.NewCart(zero, kernel.NewUUID())
		require.Error(t, err)

		_, err = cart.NewCart(kernel.NewUUID(), zero)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c cart.Cart
		require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}

func TestCart_AddLine(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("appends new lines in insertion order", func(t *testing.T) {
		c := newTestCart(t)
		otherProduct := kernel.NewUUID()

		_, err := c.AddLine(productID, 1, "M", nil)
		require.NoError(t, err)
		_, err = c.AddLine(otherProduct, 2, "L", nil)
		require.NoError(t, err)

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.True(t, lines[0].ProductID().IsEqual(productID))
		assert.True(t, lines[1].ProductID().IsEqual(otherProduct))
	})

	t.Run("merges same variant by summing quantities", func(t *testing.T) {
		c := newTestCart(t)
		black := colorPtr(t, "black", "#000000")

		first, err := c.AddLine(productID, 2, "M", black)
		require.NoError(t, err)
		merged, err := c.AddLine(productID, 3, "M", colorPtr(t, "black", "#000000"))
		require.NoError(t, err)

		require.Len(t, c.Lines(), 1)
		assert.True(t, merged.ID().IsEqual(first.ID()))
		assert.Equal(t, 5, merged.Quantity())
	})

	t.Run("different size or color is a different line", func(t *testing.T) {
		c := newTestCart(t)

		_, err := c.AddLine(productID, 1, "M", nil)
		require.NoError(t, err)
		_, err = c.AddLine(productID, 1, "L", nil)
		require.NoError(t, err)
		_, err = c.AddLine(productID, 1, "M", colorPtr(t, "red", "#ff0000"))
		require.NoError(t, err)

		assert.Len(t, c.Lines(), 3)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		c := newTestCart(t)
		_, err := c.AddLine(productID, 0, "M", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires size", func(t *testing.T) {
		c := newTestCart(t)
		_, err := c.AddLine(productID, 1, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCart_UpdateLineQuantity(t *testing.T) {
	t.Run("replaces quantity", func(t *testing.T) {
		c := newTestCart(t)
		line, err := c.AddLine(kernel.NewUUID(), 2, "M", nil)
		require.NoError(t, err)

		removed, err := c.UpdateLineQuantity(line.ID(), 7)

		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 7, c.Lines()[0].Quantity())
	})

	t.Run("zero or negative removes the line", func(t *testing.T) {
		c := newTestCart(t)
		line, err := c.AddLine(kernel.NewUUID(), 2, "M", nil)
		require.NoError(t, err)

		removed, err := c.UpdateLineQuantity(line.ID(), 0)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown line is not found", func(t *testing.T) {
		c := newTestCart(t)
		_, err := c.UpdateLineQuantity(kernel.NewUUID(), 3)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCart_RemoveLineAndClear(t *testing.T) {
	c := newTestCart(t)
	first, err := c.AddLine(kernel.NewUUID(), 1, "M", nil)
	require.NoError(t, err)
	_, err = c.AddLine(kernel.NewUUID(), 1, "L", nil)
	require.NoError(t, err)

	require.NoError(t, c.RemoveLine(first.ID()))
	assert.Len(t, c.Lines(), 1)

	require.ErrorIs(t, c.RemoveLine(first.ID()), errs.ErrObjectNotFound)

	c.Clear()
	assert.True(t, c.IsEmpty())
	require.NoError(t, c.Validate())
}

func TestRestoreCart_RoundTrip(t *testing.T) {
	original := newTestCart(t)
	_, err := original.AddLine(kernel.NewUUID(), 2, "M", colorPtr(t, "blue", "#0000ff"))
	require.NoError(t, err)

	restored, err := cart.RestoreCart(original.ID(), original.UserID(), original.Lines())

	require.NoError(t, err)
	require.NoError(t, restored.Validate())
	assert.Equal(t, original.Lines(), restored.Lines())
}
