package service

import (
	"context"
	"testing"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	mode, err := f.modes.CreatePaymentMode(ctx, domain.PaymentModeRequest{Mode: "UPI"})
	require.NoError(t, err)
	assert.True(t, mode.IsActive)

	_, err = f.modes.CreatePaymentMode(ctx, domain.PaymentModeRequest{Mode: "UPI"})
	assert.True(t, domain.IsConflict(err))

	_, err = f.modes.CreatePaymentMode(ctx, domain.PaymentModeRequest{Mode: "  "})
	assert.True(t, domain.IsValidation(err))

	_, err = f.modes.CreatePaymentMode(ctx, domain.PaymentModeRequest{Mode: "upi"})
	assert.NoError(t, err, "names are case-sensitive")

	got, err := f.modes.GetPaymentModeByName(ctx, "UPI")
	require.NoError(t, err)
	assert.Equal(t, mode.ID, got.ID)

	_, err = f.modes.GetPaymentModeByName(ctx, "Cheque")
	assert.True(t, domain.IsNotFound(err))
}

func TestActivePaymentModes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mode(t, "UPI", true)
	f.mode(t, "Wallet", false)

	all, err := f.modes.GetAllPaymentModes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := f.modes.GetActivePaymentModes(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "UPI", active[0].Mode)
}

func TestUpdatePaymentMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	upi := f.mode(t, "UPI", true)
	f.mode(t, "Wallet", true)

	inactive := false
	updated, err := f.modes.UpdatePaymentMode(ctx, upi.ID, domain.PaymentModeRequest{Mode: "UPI Lite", IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "UPI Lite", updated.Mode)
	assert.False(t, updated.IsActive)

	kept, err := f.modes.UpdatePaymentMode(ctx, upi.ID, domain.PaymentModeRequest{Mode: "UPI Lite"})
	require.NoError(t, err)
	assert.False(t, kept.IsActive)

	_, err = f.modes.UpdatePaymentMode(ctx, upi.ID, domain.PaymentModeRequest{Mode: "Wallet"})
	assert.True(t, domain.IsConflict(err))

	_, err = f.modes.UpdatePaymentMode(ctx, uuid.New(), domain.PaymentModeRequest{Mode: "Cheque"})
	assert.True(t, domain.IsNotFound(err))
}

func TestTogglePaymentModeStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	upi := f.mode(t, "UPI", true)

	toggled, err := f.modes.TogglePaymentModeStatus(ctx, upi.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = f.modes.TogglePaymentModeStatus(ctx, upi.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = f.modes.TogglePaymentModeStatus(ctx, uuid.New())
	assert.True(t, domain.IsNotFound(err))
}

func TestDeletePaymentMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	upi := f.mode(t, "UPI", true)
	wallet := f.mode(t, "Wallet", true)
	f.pay(t, upi, "10")

	err := f.modes.DeletePaymentMode(ctx, upi.ID)
	assert.True(t, domain.IsConflict(err), "got %v", err)

	_, err = f.modes.GetPaymentModeByID(ctx, upi.ID)
	require.NoError(t, err)

	require.NoError(t, f.modes.DeletePaymentMode(ctx, wallet.ID))
	_, err = f.modes.GetPaymentModeByID(ctx, wallet.ID)
	assert.True(t, domain.IsNotFound(err))

	assert.NoError(t, f.modes.DeletePaymentMode(ctx, uuid.New()))
}
