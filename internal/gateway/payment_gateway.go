package gateway

import (
	"context"
	"log"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentGateway authorizes payments made with modes other than cash on
// delivery.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, request PaymentRequest) (*PaymentResponse, error)
}

type PaymentRequest struct {
	PaymentID     uuid.UUID       `json:"payment_id"`
	PaymentMode   string          `json:"payment_mode"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

type PaymentResponse struct {
	Status        domain.PaymentStatus `json:"status"`
	TransactionID string               `json:"transaction_id,omitempty"`
}

// StubPaymentGateway accepts every request and leaves it PENDING. No
// provider is contacted.
type StubPaymentGateway struct{}

func NewStubPaymentGateway() *StubPaymentGateway {
	return &StubPaymentGateway{}
}

func (g *StubPaymentGateway) ProcessPayment(_ context.Context, request PaymentRequest) (*PaymentResponse, error) {
	log.Printf("Stub payment gateway: payment %s via %s, amount %s",
		request.PaymentID, request.PaymentMode, request.Amount.StringFixed(2))

	return &PaymentResponse{
		Status:        domain.PaymentStatusPending,
		TransactionID: request.TransactionID,
	}, nil
}
