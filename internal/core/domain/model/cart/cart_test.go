package cart_test

import (
	"testing"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, "", kernel.MustMoney(price), 100)
	require.NoError(t, err)
	return p
}

func TestCart_AddItem(t *testing.T) {
	milk := mustProduct(t, "Milk", "85.00")
	bread := mustProduct(t, "Bread", "40.00")

	t.Run("should append distinct products in insertion order", func(t *testing.T) {
		c := cart.NewCart()

		require.NoError(t, c.AddItem(milk, 2))
		require.NoError(t, c.AddItem(bread, 1))

		items := c.Items()
		require.Len(t, items, 2)
		assert.True(t, items[0].Product.IsEqual(milk))
		assert.Equal(t, 2, items[0].Quantity)
		assert.True(t, items[1].Product.IsEqual(bread))
		assert.Equal(t, 1, items[1].Quantity)
	})

	t.Run("should merge duplicate product into one line", func(t *testing.T) {
		c := cart.NewCart()

		require.NoError(t, c.AddItem(milk, 2))
		require.NoError(t, c.AddItem(milk, 3))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		c := cart.NewCart()

		require.Error(t, c.AddItem(milk, 0))
		require.Error(t, c.AddItem(milk, -2))
		assert.True(t, c.IsEmpty())
	})

	t.Run("should reject nil product", func(t *testing.T) {
		c := cart.NewCart()

		require.Error(t, c.AddItem(nil, 1))
	})
}

func TestCart_RemoveItem(t *testing.T) {
	milk := mustProduct(t, "Milk", "85.00")
	bread := mustProduct(t, "Bread", "40.00")

	t.Run("should delete the aggregated line entirely", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddItem(milk, 5))
		require.NoError(t, c.AddItem(bread, 1))

		require.NoError(t, c.RemoveItem(milk))

		items := c.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].Product.IsEqual(bread))
	})

	t.Run("removing absent product is a no-op", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddItem(bread, 1))

		require.NoError(t, c.RemoveItem(milk))

		assert.Len(t, c.Items(), 1)
	})

	t.Run("merge still works after removal reindexes lines", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddItem(milk, 1))
		require.NoError(t, c.AddItem(bread, 1))
		require.NoError(t, c.RemoveItem(milk))

		require.NoError(t, c.AddItem(bread, 2))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})
}

func TestCart_Subtotal(t *testing.T) {
	t.Run("sums unit price times quantity across lines", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddItem(mustProduct(t, "Milk", "85.00"), 2))
		require.NoError(t, c.AddItem(mustProduct(t, "Bread", "40.00"), 1))
		require.NoError(t, c.AddItem(mustProduct(t, "Dumbbell 15kg", "1200.00"), 1))

		assert.Equal(t, "1410.00", c.Subtotal().String())
	})

	t.Run("empty cart prices to zero", func(t *testing.T) {
		assert.True(t, cart.NewCart().Subtotal().IsZero())
	})
}
