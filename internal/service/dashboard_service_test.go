package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsEmpty(t *testing.T) {
	f := newFixture(t)

	stats, err := f.dashboard.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalProducts)
	assert.NotNil(t, stats.Categories)
	assert.Empty(t, stats.Categories)
	assert.True(t, stats.TotalValue.IsZero())
	assert.Zero(t, stats.TotalItemsInStock)
	assert.NotNil(t, stats.RecentPayments)
	assert.Empty(t, stats.RecentPayments)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	food := f.category(t, "Food")
	mobiles := f.category(t, "Mobiles")

	_, err := f.products.CreateProduct(ctx, productRequest("Organic Apple", "299.00", 150, food.ID))
	require.NoError(t, err)
	_, err = f.products.CreateProduct(ctx, productRequest("iPhone 15 Pro", "134900.00", 50, mobiles.ID))
	require.NoError(t, err)

	upi := f.mode(t, "UPI", true)
	var last string
	for _, amount := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		last = f.pay(t, upi, amount).ID.String()
	}

	stats, err := f.dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Len(t, stats.Categories, 2)
	assert.Equal(t, "6789850.00", stats.TotalValue.StringFixed(2))
	assert.Equal(t, int64(200), stats.TotalItemsInStock)

	require.Len(t, stats.RecentPayments, 5)
	assert.Equal(t, last, stats.RecentPayments[0].ID.String())
	assert.Equal(t, "7.00", stats.RecentPayments[0].Amount.StringFixed(2))
	assert.Equal(t, "3.00", stats.RecentPayments[4].Amount.StringFixed(2))
	for i := 1; i < len(stats.RecentPayments); i++ {
		assert.False(t, stats.RecentPayments[i].PaymentDate.After(stats.RecentPayments[i-1].PaymentDate))
	}
}
