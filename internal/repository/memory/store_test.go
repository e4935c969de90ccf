package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repository.UnitOfWork = (*Store)(nil)

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	boom := errors.New("boom")

	err := store.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		require.NoError(t, stores.PaymentModes.Create(ctx, domain.NewPaymentMode("UPI", true)))
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := store.Stores().PaymentModes.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWithinTransactionCommits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	mode := domain.NewPaymentMode("UPI", true)

	err := store.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		return stores.PaymentModes.Create(ctx, mode)
	})
	require.NoError(t, err)

	got, err := store.Stores().PaymentModes.GetByName(ctx, "UPI")
	require.NoError(t, err)
	assert.Equal(t, mode.ID, got.ID)
}

func TestPaymentModeConstraints(t *testing.T) {
	ctx := context.Background()
	stores := NewStore().Stores()

	upi := domain.NewPaymentMode("UPI", true)
	wallet := domain.NewPaymentMode("Wallet", false)
	require.NoError(t, stores.PaymentModes.Create(ctx, upi))
	require.NoError(t, stores.PaymentModes.Create(ctx, wallet))

	err := stores.PaymentModes.Create(ctx, domain.NewPaymentMode("UPI", true))
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	wallet.Mode = "UPI"
	assert.ErrorIs(t, stores.PaymentModes.Update(ctx, wallet), repository.ErrDuplicate)

	exists, err := stores.PaymentModes.ExistsByName(ctx, "upi")
	require.NoError(t, err)
	assert.False(t, exists, "names are case-sensitive")

	active, err := stores.PaymentModes.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "UPI", active[0].Mode)

	_, err = stores.PaymentModes.GetByID(ctx, domain.NewPaymentMode("x", true).ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPaymentQueries(t *testing.T) {
	ctx := context.Background()
	stores := NewStore().Stores()

	mode := domain.NewPaymentMode("UPI", true)
	require.NoError(t, stores.PaymentModes.Create(ctx, mode))

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	var created []*domain.Payment
	for i, amount := range []string{"10.00", "20.50", "30.25"} {
		payment := domain.NewPayment(*mode, decimal.RequireFromString(amount), "", "", base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, stores.Payments.Create(ctx, payment))
		created = append(created, payment)
	}

	created[0].UpdateStatus(domain.PaymentStatusCompleted)
	require.NoError(t, stores.Payments.Update(ctx, created[0]))
	created[2].UpdateStatus(domain.PaymentStatusCompleted)
	require.NoError(t, stores.Payments.Update(ctx, created[2]))

	total, err := stores.Payments.SumCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, "40.25", total.StringFixed(2))

	count, err := stores.Payments.CountByStatus(ctx, domain.PaymentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	recent, err := stores.Payments.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, created[2].ID, recent[0].ID)
	assert.Equal(t, created[1].ID, recent[1].ID)
	assert.Equal(t, "UPI", recent[0].PaymentMode.Mode)

	all, err := stores.Payments.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, created[0].ID, all[0].ID)

	refunded, err := stores.Payments.ListByStatus(ctx, domain.PaymentStatusRefunded)
	require.NoError(t, err)
	assert.NotNil(t, refunded)
	assert.Empty(t, refunded)
}

func TestPaymentReferencesMode(t *testing.T) {
	ctx := context.Background()
	stores := NewStore().Stores()

	orphan := domain.NewPaymentMode("Ghost", true)
	payment := domain.NewPayment(*orphan, decimal.NewFromInt(5), "", "", time.Now())
	assert.ErrorIs(t, stores.Payments.Create(ctx, payment), repository.ErrReferenced)

	mode := domain.NewPaymentMode("UPI", true)
	require.NoError(t, stores.PaymentModes.Create(ctx, mode))
	payment = domain.NewPayment(*mode, decimal.NewFromInt(5), "TXN-9", "", time.Now())
	require.NoError(t, stores.Payments.Create(ctx, payment))

	assert.ErrorIs(t, stores.PaymentModes.Delete(ctx, mode.ID), repository.ErrReferenced)

	mode.Mode = "Unified Payments"
	require.NoError(t, stores.PaymentModes.Update(ctx, mode))

	got, err := stores.Payments.GetByTransactionID(ctx, "TXN-9")
	require.NoError(t, err)
	assert.Equal(t, "Unified Payments", got.PaymentMode.Mode)
}

func TestProductAggregates(t *testing.T) {
	ctx := context.Background()
	stores := NewStore().Stores()

	total, err := stores.Products.TotalInventoryValue(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	food := domain.NewCategory("Food")
	require.NoError(t, stores.Categories.Create(ctx, food))
	assert.ErrorIs(t, stores.Categories.Create(ctx, domain.NewCategory("Food")), repository.ErrDuplicate)

	require.NoError(t, stores.Products.Create(ctx, domain.NewProduct("Apple", decimal.RequireFromString("2.50"), 4, "", *food)))
	require.NoError(t, stores.Products.Create(ctx, domain.NewProduct("Pear", decimal.RequireFromString("1.25"), 8, "", *food)))

	total, err = stores.Products.TotalInventoryValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "20.00", total.StringFixed(2))

	items, err := stores.Products.TotalItemsInStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), items)

	orphan := domain.NewProduct("Phone", decimal.NewFromInt(1), 1, "", *domain.NewCategory("Mobiles"))
	assert.ErrorIs(t, stores.Products.Create(ctx, orphan), repository.ErrReferenced)
	assert.ErrorIs(t, stores.Products.Delete(ctx, orphan.ID), repository.ErrNotFound)
}
