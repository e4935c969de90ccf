package repository

import (
	"context"
	"errors"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrReferenced = errors.New("record is still referenced")
)

type PaymentModeStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error)
	GetByName(ctx context.Context, mode string) (*domain.PaymentMode, error)
	List(ctx context.Context) ([]*domain.PaymentMode, error)
	ListActive(ctx context.Context) ([]*domain.PaymentMode, error)
	ExistsByName(ctx context.Context, mode string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, mode *domain.PaymentMode) error
	Update(ctx context.Context, mode *domain.PaymentMode) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentStore persists payments. Update writes the status only; every
// other column is fixed at creation.
type PaymentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Payment, error)
	SumCompleted(ctx context.Context) (decimal.Decimal, error)
	CountByStatus(ctx context.Context, status domain.PaymentStatus) (int64, error)
	CountByPaymentMode(ctx context.Context, paymentModeID uuid.UUID) (int64, error)
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
}

type CategoryStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, category *domain.Category) error
}

type ProductStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
	TotalItemsInStock(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Stores struct {
	PaymentModes PaymentModeStore
	Payments     PaymentStore
	Categories   CategoryStore
	Products     ProductStore
}

// UnitOfWork hands out stores. Stores() runs every call on its own;
// WithinTransaction commits all writes made through the given stores when
// fn returns nil and discards them otherwise.
type UnitOfWork interface {
	Stores() Stores
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
