package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    PaymentStatus
		wantErr bool
	}{
		{input: "PENDING", want: PaymentStatusPending},
		{input: "completed", want: PaymentStatusCompleted},
		{input: " Failed ", want: PaymentStatusFailed},
		{input: "REFUNDED", want: PaymentStatusRefunded},
		{input: "CANCELLED", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePaymentStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPaymentDefaults(t *testing.T) {
	mode := NewPaymentMode("UPI", true)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	payment := NewPayment(*mode, decimal.RequireFromString("500.005"), "TXN-1", "", now)

	assert.Equal(t, PaymentStatusPending, payment.Status)
	assert.Equal(t, now, payment.PaymentDate)
	assert.Equal(t, "500.01", payment.Amount.StringFixed(2))

	view := payment.ToView()
	assert.Equal(t, "UPI", view.PaymentMode)
	require.NotNil(t, view.TransactionID)
	assert.Equal(t, "TXN-1", *view.TransactionID)
	assert.Nil(t, view.Remarks)
}

func TestCreatePaymentRequestValidateAmount(t *testing.T) {
	amount := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		name    string
		amount  *decimal.Decimal
		wantErr bool
	}{
		{name: "missing", amount: nil, wantErr: true},
		{name: "zero", amount: amount("0"), wantErr: true},
		{name: "negative", amount: amount("-10.50"), wantErr: true},
		{name: "rounds to zero", amount: amount("0.004"), wantErr: true},
		{name: "too large", amount: amount("100000000"), wantErr: true},
		{name: "smallest", amount: amount("0.01")},
		{name: "largest", amount: amount("99999999.99")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreatePaymentRequest{Amount: tt.amount}.ValidateAmount()
			if tt.wantErr {
				assert.True(t, IsValidation(err), "expected validation error, got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreatePaymentRequestValidateRemarks(t *testing.T) {
	ok := CreatePaymentRequest{Remarks: strings.Repeat("é", MaxRemarksLength)}
	assert.NoError(t, ok.ValidateRemarks())

	tooLong := CreatePaymentRequest{Remarks: strings.Repeat("a", MaxRemarksLength+1)}
	assert.True(t, IsValidation(tooLong.ValidateRemarks()))
}

func TestPaymentModeToggleAndCashOnDelivery(t *testing.T) {
	mode := NewPaymentMode("cash on delivery", true)
	assert.True(t, mode.IsCashOnDelivery())

	mode.Toggle()
	assert.False(t, mode.IsActive)
	mode.Toggle()
	assert.True(t, mode.IsActive)

	assert.False(t, NewPaymentMode("UPI", true).IsCashOnDelivery())
}

func TestPaymentModeRequest(t *testing.T) {
	assert.True(t, IsValidation(PaymentModeRequest{Mode: "  "}.Validate()))
	assert.NoError(t, PaymentModeRequest{Mode: "Wallet"}.Validate())

	inactive := false
	assert.True(t, PaymentModeRequest{}.ActiveOr(true))
	assert.False(t, PaymentModeRequest{IsActive: &inactive}.ActiveOr(true))
}

func TestProductReduceStock(t *testing.T) {
	product := NewProduct("Notebook Set", decimal.RequireFromString("899"), 3, "", Category{Name: "Stationery"})

	require.NoError(t, product.ReduceStock(2))
	assert.Equal(t, 1, product.TotalItemsInStock)

	err := product.ReduceStock(2)
	assert.True(t, IsInvalidState(err))
	assert.Equal(t, 1, product.TotalItemsInStock)
}

func TestProductInventoryValue(t *testing.T) {
	product := NewProduct("Organic Apple", decimal.RequireFromString("299.00"), 150, "", Category{})
	assert.True(t, decimal.RequireFromString("44850").Equal(product.InventoryValue()))
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("load payment: %w", NewNotFoundError("Payment not found with id: %d", 7))

	assert.Equal(t, ErrorKindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
	assert.Equal(t, ErrorKind(""), KindOf(fmt.Errorf("plain")))
}

func TestMoneyKeepsTwoDecimals(t *testing.T) {
	payment := NewPayment(PaymentMode{Mode: "UPI"}, decimal.NewFromInt(500), "", "", time.Now())

	data, err := json.Marshal(payment.ToView())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount":"500.00"`)

	data, err = json.Marshal(NewMoney(decimal.RequireFromString("12.5")))
	require.NoError(t, err)
	assert.Equal(t, `"12.50"`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(decimal.RequireFromString("12.5")))

	product := NewProduct("Apple", decimal.NewFromInt(299), 1, "", Category{Name: "Food"})
	data, err = json.Marshal(product)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":"299.00"`)
	assert.Contains(t, string(data), `"name":"Apple"`)
}
