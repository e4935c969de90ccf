package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/google/uuid"
)

type PaymentModeService struct {
	uow repository.UnitOfWork
}

func NewPaymentModeService(uow repository.UnitOfWork) *PaymentModeService {
	return &PaymentModeService{uow: uow}
}

func (s *PaymentModeService) GetAllPaymentModes(ctx context.Context) ([]*domain.PaymentMode, error) {
	modes, err := s.uow.Stores().PaymentModes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payment modes: %w", err)
	}
	return modes, nil
}

func (s *PaymentModeService) GetActivePaymentModes(ctx context.Context) ([]*domain.PaymentMode, error) {
	modes, err := s.uow.Stores().PaymentModes.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active payment modes: %w", err)
	}
	return modes, nil
}

func (s *PaymentModeService) GetPaymentModeByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error) {
	mode, err := s.uow.Stores().PaymentModes.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Payment mode not found with id: %s", id)
	}
	return mode, nil
}

func (s *PaymentModeService) GetPaymentModeByName(ctx context.Context, name string) (*domain.PaymentMode, error) {
	mode, err := s.uow.Stores().PaymentModes.GetByName(ctx, name)
	if err != nil {
		return nil, notFoundOr(err, "Payment mode not found: %s", name)
	}
	return mode, nil
}

// CreatePaymentMode adds a mode, active unless the request says otherwise.
func (s *PaymentModeService) CreatePaymentMode(ctx context.Context, request domain.PaymentModeRequest) (*domain.PaymentMode, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	mode := domain.NewPaymentMode(strings.TrimSpace(request.Mode), request.ActiveOr(true))

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		exists, err := stores.PaymentModes.ExistsByName(ctx, mode.Mode)
		if err != nil {
			return fmt.Errorf("check payment mode name: %w", err)
		}
		if exists {
			return domain.NewConflictError("Payment mode already exists: %s", mode.Mode)
		}
		return duplicateAsConflict(stores.PaymentModes.Create(ctx, mode), mode.Mode)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Payment mode created: %s (active=%t)", mode.Mode, mode.IsActive)
	return mode, nil
}

// UpdatePaymentMode renames the mode and sets its flag. A request without
// isActive keeps the current flag.
func (s *PaymentModeService) UpdatePaymentMode(ctx context.Context, id uuid.UUID, request domain.PaymentModeRequest) (*domain.PaymentMode, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(request.Mode)

	var mode *domain.PaymentMode
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		var err error
		mode, err = stores.PaymentModes.GetByID(ctx, id)
		if err != nil {
			return notFoundOr(err, "Payment mode not found with id: %s", id)
		}

		if name != mode.Mode {
			exists, err := stores.PaymentModes.ExistsByName(ctx, name)
			if err != nil {
				return fmt.Errorf("check payment mode name: %w", err)
			}
			if exists {
				return domain.NewConflictError("Payment mode already exists: %s", name)
			}
		}

		mode.Mode = name
		mode.IsActive = request.ActiveOr(mode.IsActive)
		return duplicateAsConflict(stores.PaymentModes.Update(ctx, mode), name)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Payment mode updated: %s (active=%t)", mode.Mode, mode.IsActive)
	return mode, nil
}

// DeletePaymentMode removes a mode no payment refers to. Deleting an
// unknown id succeeds.
func (s *PaymentModeService) DeletePaymentMode(ctx context.Context, id uuid.UUID) error {
	return s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		count, err := stores.Payments.CountByPaymentMode(ctx, id)
		if err != nil {
			return fmt.Errorf("count payments for mode: %w", err)
		}
		if count > 0 {
			return domain.NewConflictError("Payment mode %s is used by %d payment(s) and cannot be deleted", id, count)
		}

		if err := stores.PaymentModes.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrReferenced) {
				return domain.NewConflictError("Payment mode %s is used by existing payments and cannot be deleted", id)
			}
			return fmt.Errorf("payment mode delete error: %w", err)
		}
		log.Printf("Payment mode deleted: %s", id)
		return nil
	})
}

func (s *PaymentModeService) TogglePaymentModeStatus(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error) {
	var mode *domain.PaymentMode
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		var err error
		mode, err = stores.PaymentModes.GetByID(ctx, id)
		if err != nil {
			return notFoundOr(err, "Payment mode not found with id: %s", id)
		}

		mode.Toggle()
		if err := stores.PaymentModes.Update(ctx, mode); err != nil {
			return fmt.Errorf("payment mode update error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Payment mode toggled: %s (active=%t)", mode.Mode, mode.IsActive)
	return mode, nil
}

func duplicateAsConflict(err error, name string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicate):
		return domain.NewConflictError("Payment mode already exists: %s", name)
	default:
		return fmt.Errorf("payment mode write error: %w", err)
	}
}
