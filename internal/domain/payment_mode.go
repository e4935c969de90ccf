package domain

import (
	"strings"

	"github.com/google/uuid"
)

// CashOnDeliveryMode is settled on delivery and never goes through a gateway.
const CashOnDeliveryMode = "Cash On Delivery"

type PaymentMode struct {
	ID       uuid.UUID `json:"id"`
	Mode     string    `json:"mode"`
	IsActive bool      `json:"isActive"`
}

func NewPaymentMode(mode string, isActive bool) *PaymentMode {
	return &PaymentMode{
		ID:       uuid.New(),
		Mode:     mode,
		IsActive: isActive,
	}
}

func (m *PaymentMode) Toggle() {
	m.IsActive = !m.IsActive
}

func (m *PaymentMode) IsCashOnDelivery() bool {
	return strings.EqualFold(m.Mode, CashOnDeliveryMode)
}

// PaymentModeRequest is the body of create and update calls. IsActive is
// optional: creation defaults it to true, updates keep the current value.
type PaymentModeRequest struct {
	Mode     string `json:"mode"`
	IsActive *bool  `json:"isActive"`
}

func (r PaymentModeRequest) Validate() error {
	if strings.TrimSpace(r.Mode) == "" {
		return NewValidationError("Payment mode name is required")
	}
	return nil
}

func (r PaymentModeRequest) ActiveOr(def bool) bool {
	if r.IsActive == nil {
		return def
	}
	return *r.IsActive
}
