package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money is a decimal that always renders with two fractional digits, the
// scale of the DECIMAL(10,2) columns.
type Money struct {
	decimal.Decimal
}

func NewMoney(value decimal.Decimal) Money {
	return Money{Decimal: value}
}

func (m Money) String() string {
	return m.StringFixed(amountScale)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// MarshalJSON renders the price at fixed scale; the remaining fields keep
// their struct tags.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		Price Money `json:"price"`
	}{product(p), NewMoney(p.Price)})
}
