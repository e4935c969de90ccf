package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

func (s PaymentStatus) IsValid() bool {
	for _, status := range PaymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ParsePaymentStatus accepts enum names in any letter case.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	status := PaymentStatus(strings.ToUpper(strings.TrimSpace(value)))
	if !status.IsValid() {
		return "", NewValidationError("Invalid payment status: %s", value)
	}
	return status, nil
}

const (
	MaxRemarksLength = 500
	amountScale      = 2
)

// MaxPaymentAmount is the largest value a DECIMAL(10,2) column holds.
var MaxPaymentAmount = decimal.RequireFromString("99999999.99")

type Payment struct {
	ID            uuid.UUID
	PaymentDate   time.Time
	PaymentMode   PaymentMode
	TransactionID string
	Amount        decimal.Decimal
	Status        PaymentStatus
	Remarks       string
}

func NewPayment(mode PaymentMode, amount decimal.Decimal, transactionID, remarks string, now time.Time) *Payment {
	return &Payment{
		ID:            uuid.New(),
		PaymentDate:   now,
		PaymentMode:   mode,
		TransactionID: transactionID,
		Amount:        amount.Round(amountScale),
		Status:        PaymentStatusPending,
		Remarks:       remarks,
	}
}

func (p *Payment) UpdateStatus(status PaymentStatus) {
	p.Status = status
}

// ToView flattens the referenced payment mode to its display name.
func (p *Payment) ToView() PaymentView {
	return PaymentView{
		ID:            p.ID,
		PaymentDate:   p.PaymentDate,
		PaymentMode:   p.PaymentMode.Mode,
		TransactionID: optionalString(p.TransactionID),
		Amount:        NewMoney(p.Amount),
		Status:        p.Status,
		Remarks:       optionalString(p.Remarks),
	}
}

type PaymentView struct {
	ID            uuid.UUID       `json:"id"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMode   string          `json:"paymentMode"`
	TransactionID *string         `json:"transactionId"`
	Amount        Money           `json:"amount"`
	Status        PaymentStatus   `json:"status"`
	Remarks       *string         `json:"remarks"`
}

func ToPaymentViews(payments []*Payment) []PaymentView {
	views := make([]PaymentView, 0, len(payments))
	for _, payment := range payments {
		views = append(views, payment.ToView())
	}
	return views
}

type CreatePaymentRequest struct {
	PaymentModeID uuid.UUID        `json:"paymentModeId"`
	TransactionID string           `json:"transactionId"`
	Amount        *decimal.Decimal `json:"amount"`
	Remarks       string           `json:"remarks"`
}

// ValidateAmount checks the amount is present, positive and fits the column.
func (r CreatePaymentRequest) ValidateAmount() error {
	if r.Amount == nil || !r.Amount.Round(amountScale).IsPositive() {
		return NewValidationError("Amount must be greater than zero")
	}
	if r.Amount.Round(amountScale).GreaterThan(MaxPaymentAmount) {
		return NewValidationError("Amount must not exceed %s", MaxPaymentAmount.StringFixed(amountScale))
	}
	return nil
}

func (r CreatePaymentRequest) ValidateRemarks() error {
	if utf8.RuneCountInString(r.Remarks) > MaxRemarksLength {
		return NewValidationError("Remarks must be at most %d characters", MaxRemarksLength)
	}
	return nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
