package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/events"
	"github.com/Rovan44/shopping-app-44/internal/gateway"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentService struct {
	uow            repository.UnitOfWork
	paymentGateway gateway.PaymentGateway
	publisher      events.Publisher
	now            func() time.Time
}

func NewPaymentService(
	uow repository.UnitOfWork,
	paymentGateway gateway.PaymentGateway,
	publisher events.Publisher,
) *PaymentService {
	if paymentGateway == nil {
		paymentGateway = gateway.NewStubPaymentGateway()
	}
	return &PaymentService{
		uow:            uow,
		paymentGateway: paymentGateway,
		publisher:      publisherOrNop(publisher),
		now:            time.Now,
	}
}

// WithClock replaces the time source used for payment dates.
func (s *PaymentService) WithClock(now func() time.Time) *PaymentService {
	s.now = now
	return s
}

// CreatePayment records a new PENDING payment against an active payment
// mode. Nothing is written when any check fails.
func (s *PaymentService) CreatePayment(ctx context.Context, request domain.CreatePaymentRequest) (*domain.PaymentView, error) {
	var payment *domain.Payment

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		mode, err := stores.PaymentModes.GetByID(ctx, request.PaymentModeID)
		if err != nil {
			return notFoundOr(err, "Payment mode not found with id: %s", request.PaymentModeID)
		}
		if !mode.IsActive {
			return domain.NewInvalidStateError("Payment mode is not active: %s", mode.Mode)
		}
		if err := request.ValidateAmount(); err != nil {
			return err
		}
		if err := request.ValidateRemarks(); err != nil {
			return err
		}

		payment = domain.NewPayment(*mode, *request.Amount, request.TransactionID, request.Remarks, s.now())

		if !mode.IsCashOnDelivery() {
			if err := s.authorize(ctx, payment); err != nil {
				return err
			}
		}

		if err := stores.Payments.Create(ctx, payment); err != nil {
			return fmt.Errorf("payment create error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Payment created: ID=%s, Mode=%s, Amount=%s", payment.ID, payment.PaymentMode.Mode, payment.Amount.StringFixed(2))

	view := payment.ToView()
	publishEvent(ctx, s.publisher, events.PaymentCreatedEvent, events.PaymentCreatedPayload{Payment: view})
	return &view, nil
}

func (s *PaymentService) authorize(ctx context.Context, payment *domain.Payment) error {
	response, err := s.paymentGateway.ProcessPayment(ctx, gateway.PaymentRequest{
		PaymentID:     payment.ID,
		PaymentMode:   payment.PaymentMode.Mode,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
	})
	if err != nil {
		return fmt.Errorf("payment gateway error: %w", err)
	}

	if response.Status.IsValid() {
		payment.UpdateStatus(response.Status)
	}
	if payment.TransactionID == "" {
		payment.TransactionID = response.TransactionID
	}
	return nil
}

// UpdatePaymentStatus overwrites the status. Any transition is allowed.
func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) (*domain.PaymentView, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("Invalid payment status: %s", status)
	}

	var payment *domain.Payment
	var previous domain.PaymentStatus

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		var err error
		payment, err = stores.Payments.GetByID(ctx, id)
		if err != nil {
			return notFoundOr(err, "Payment not found with id: %s", id)
		}

		previous = payment.Status
		payment.UpdateStatus(status)

		if err := stores.Payments.Update(ctx, payment); err != nil {
			return fmt.Errorf("payment update error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Payment status updated: ID=%s, %s -> %s", id, previous, status)

	publishEvent(ctx, s.publisher, events.PaymentStatusUpdatedEvent, events.PaymentStatusUpdatedPayload{
		PaymentID:      id,
		PreviousStatus: previous,
		Status:         status,
	})

	view := payment.ToView()
	return &view, nil
}

func (s *PaymentService) GetAllPayments(ctx context.Context) ([]domain.PaymentView, error) {
	payments, err := s.uow.Stores().Payments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return domain.ToPaymentViews(payments), nil
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, id uuid.UUID) (*domain.PaymentView, error) {
	payment, err := s.uow.Stores().Payments.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Payment not found with id: %s", id)
	}
	view := payment.ToView()
	return &view, nil
}

func (s *PaymentService) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentView, error) {
	if transactionID == "" {
		return nil, domain.NewNotFoundError("Payment not found with transaction id: %s", transactionID)
	}
	payment, err := s.uow.Stores().Payments.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, notFoundOr(err, "Payment not found with transaction id: %s", transactionID)
	}
	view := payment.ToView()
	return &view, nil
}

func (s *PaymentService) GetPaymentsByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.PaymentView, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("Invalid payment status: %s", status)
	}
	payments, err := s.uow.Stores().Payments.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list payments by status: %w", err)
	}
	return domain.ToPaymentViews(payments), nil
}

func (s *PaymentService) GetTotalCompletedPayments(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.uow.Stores().Payments.SumCompleted(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum completed payments: %w", err)
	}
	return total, nil
}

func (s *PaymentService) GetPaymentCountByStatus(ctx context.Context, status domain.PaymentStatus) (int64, error) {
	if !status.IsValid() {
		return 0, domain.NewValidationError("Invalid payment status: %s", status)
	}
	count, err := s.uow.Stores().Payments.CountByStatus(ctx, status)
	if err != nil {
		return 0, fmt.Errorf("count payments by status: %w", err)
	}
	return count, nil
}
