package sequencerepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	september := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "RC260900001", formatOrderNumber(september, 1))
	assert.Equal(t, "RC260942007", formatOrderNumber(september, 42007))

	t.Run("wide sequences are not truncated", func(t *testing.T) {
		assert.Equal(t, "RC2609123456", formatOrderNumber(september, 123456))
	})

	t.Run("date part follows the clock", func(t *testing.T) {
		january := time.Date(2027, time.January, 31, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, "RC270100008", formatOrderNumber(january, 8))
	})
}
