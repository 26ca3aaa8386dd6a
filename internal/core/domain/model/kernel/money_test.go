package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive", func(t *testing.T) {
		zero, err := kernel.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), zero.Amount())

		m, err := kernel.NewMoney(1000)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), m.Amount())
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := mustMoney(t, 1000)

	lineTotal := price.MultiplyBy(2)
	assert.Equal(t, int64(2000), lineTotal.Amount())

	withFee := lineTotal.Add(mustMoney(t, 250))
	assert.Equal(t, int64(2250), withFee.Amount())
}

func TestMoney_IsAtLeast(t *testing.T) {
	threshold := mustMoney(t, 5000)

	assert.True(t, mustMoney(t, 5000).IsAtLeast(threshold))
	assert.True(t, mustMoney(t, 6000).IsAtLeast(threshold))
	assert.False(t, mustMoney(t, 4999).IsAtLeast(threshold))
}

func TestColor(t *testing.T) {
	t.Run("requires name", func(t *testing.T) {
		_, err := kernel.NewColor("", "#000000")
		require.Error(t, err)
	})

	t.Run("hex is optional", func(t *testing.T) {
		c, err := kernel.NewColor("black", "")
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "black", c.Name())
	})

	t.Run("equality covers name and hex", func(t *testing.T) {
		a, _ := kernel.NewColor("black", "#000000")
		b, _ := kernel.NewColor("black", "#000000")
		c, _ := kernel.NewColor("black", "#111111")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c kernel.Color
		require.Error(t, c.Validate())
	})
}
