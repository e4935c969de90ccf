package seed

import (
	"context"
	"testing"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	require.Len(t, catalog.Categories, 4)
	assert.Equal(t, "Food", catalog.Categories[0].Name)
	assert.Equal(t, "299.00", catalog.Categories[0].Products[0].Price)
	assert.Equal(t, []string{"Cash On Delivery", "UPI", "Debit/Credit Card", "Net Banking", "Wallet"}, catalog.PaymentModes)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	result, err := Run(ctx, store, catalog)
	require.NoError(t, err)
	assert.Equal(t, Result{Categories: 4, Products: 4, PaymentModes: 5}, result)

	result, err = Run(ctx, store, catalog)
	require.NoError(t, err)
	assert.Equal(t, Result{}, result)

	stores := store.Stores()
	products, err := stores.Products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), products)

	cod, err := stores.PaymentModes.GetByName(ctx, domain.CashOnDeliveryMode)
	require.NoError(t, err)
	assert.True(t, cod.IsActive)

	value, err := stores.Products.TotalInventoryValue(ctx)
	require.NoError(t, err)
	// 299*150 + 134900*50 + 24999*75 + 899*200
	assert.Equal(t, "8844575.00", value.StringFixed(2))
}

func TestRunRollsBackOnBadPrice(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	catalog, err := ParseCatalog([]byte(`
categories:
  - name: Food
    products:
      - name: Apple
        price: cheap
        stock: 1
payment_modes: [UPI]
`))
	require.NoError(t, err)

	_, err = Run(ctx, store, catalog)
	require.Error(t, err)

	count, err := store.Stores().Categories.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
