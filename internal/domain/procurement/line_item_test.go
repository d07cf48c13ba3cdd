package procurement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewLineItem(t *testing.T) {
	t.Run("derives line total from price and tax", func(t *testing.T) {
		item, err := NewLineItem(1, "test prod", 2, decimal.RequireFromString("10.00"), "GST 5%", decimal.RequireFromString("0.50"))

		assert.NoError(t, err)
		assert.Equal(t, "test prod", item.ItemName)
		assert.Equal(t, 2, item.Quantity)
		assert.True(t, item.LineTotal.Equal(decimal.RequireFromString("10.50")))
	})

	t.Run("rejects empty item name", func(t *testing.T) {
		_, err := NewLineItem(1, "", 1, decimal.Zero, "GST 5%", decimal.Zero)

		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewLineItem(1, "test prod", 0, decimal.Zero, "GST 5%", decimal.Zero)

		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewLineItem(1, "test prod", 1, decimal.RequireFromString("-1.00"), "GST 5%", decimal.Zero)

		assert.Error(t, err)
	})
}

func TestLineItemUpdate(t *testing.T) {
	t.Run("rewrites fields and rederives line total", func(t *testing.T) {
		item, err := NewLineItem(1, "test prod", 1, decimal.RequireFromString("10.00"), "GST 5%", decimal.RequireFromString("0.50"))
		assert.NoError(t, err)

		err = item.Update("new prod", 4, decimal.RequireFromString("6.00"), "GST 5%", decimal.RequireFromString("0.30"))

		assert.NoError(t, err)
		assert.Equal(t, "new prod", item.ItemName)
		assert.Equal(t, 4, item.Quantity)
		assert.True(t, item.LineTotal.Equal(decimal.RequireFromString("6.30")))
	})

	t.Run("a stale stored line total is replaced on update", func(t *testing.T) {
		item, err := NewLineItem(1, "test prod", 1, decimal.RequireFromString("10.00"), "GST 5%", decimal.RequireFromString("0.50"))
		assert.NoError(t, err)
		item.LineTotal = decimal.RequireFromString("99.99")

		err = item.Update("test prod", 1, decimal.RequireFromString("10.00"), "GST 5%", decimal.RequireFromString("0.50"))

		assert.NoError(t, err)
		assert.True(t, item.LineTotal.Equal(decimal.RequireFromString("10.50")))
	})

	t.Run("invalid update leaves the item unchanged", func(t *testing.T) {
		item, err := NewLineItem(1, "test prod", 1, decimal.RequireFromString("10.00"), "GST 5%", decimal.RequireFromString("0.50"))
		assert.NoError(t, err)

		err = item.Update("", 1, decimal.Zero, "GST 5%", decimal.Zero)

		assert.Error(t, err)
		assert.Equal(t, "test prod", item.ItemName)
	})
}
