package product_test

import (
	"testing"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/product"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := kernel.MustMoney("85.00")

	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct("Milk", "2.5% fat", price, 100)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.NoError(t, p.ID().Validate())
		assert.Equal(t, "Milk", p.Name())
		assert.Equal(t, "2.5% fat", p.Description())
		assert.True(t, price.IsEqual(p.Price()))
		assert.Equal(t, 100, p.StockQuantity())
	})

	t.Run("should generate unique identities", func(t *testing.T) {
		p1, err := product.NewProduct("Milk", "", price, 1)
		require.NoError(t, err)
		p2, err := product.NewProduct("Milk", "", price, 1)
		require.NoError(t, err)

		assert.False(t, p1.IsEqual(p2))
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct("", "desc", price, 10)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		p, err := product.NewProduct("Milk", "", price, -1)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "stockQuantity")
	})

	t.Run("should accept zero stock", func(t *testing.T) {
		p, err := product.NewProduct("Milk", "", price, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, p.StockQuantity())
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore product with original identity", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.RestoreProduct(id, "Bread", "White sliced", kernel.MustMoney("40.00"), 50)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
	})

	t.Run("should fail with invalid identity", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.RestoreProduct(invalidID, "Bread", "", kernel.MustMoney("40.00"), 50)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value product is not constructed", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_Info(t *testing.T) {
	t.Run("renders display line with fixed price format", func(t *testing.T) {
		p, err := product.NewProduct("Dumbbell 15kg", "Sports", kernel.MustMoney("1200.00"), 10)

		require.NoError(t, err)
		assert.Equal(t, "Name: Dumbbell 15kg, description: Sports, price: 1200.00, stock: 10", p.Info())
	})
}
