package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentSelect = `
	SELECT p.id, p.payment_date, p.transaction_id, p.amount, p.status, p.remarks,
		   m.id, m.mode, m.is_active
	FROM payments p
	JOIN payment_modes m ON m.id = p.payment_mode_id
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	payment := &domain.Payment{}
	var transactionID, remarks sql.NullString

	err := row.Scan(
		&payment.ID,
		&payment.PaymentDate,
		&transactionID,
		&payment.Amount,
		&payment.Status,
		&remarks,
		&payment.PaymentMode.ID,
		&payment.PaymentMode.Mode,
		&payment.PaymentMode.IsActive,
	)
	if err != nil {
		return nil, err
	}

	if transactionID.Valid {
		payment.TransactionID = transactionID.String
	}
	if remarks.Valid {
		payment.Remarks = remarks.String
	}
	return payment, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := paymentSelect + ` WHERE p.id = $1`
	return r.getOne(ctx, fmt.Sprintf("payment %s", id), query, id)
}

// GetByTransactionID returns the latest payment carrying the transaction id.
func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	query := paymentSelect + ` WHERE p.transaction_id = $1 ORDER BY p.payment_date DESC LIMIT 1`
	return r.getOne(ctx, fmt.Sprintf("payment with transaction %q", transactionID), query, transactionID)
}

func (r *PaymentRepository) getOne(ctx context.Context, what, query string, arg interface{}) (*domain.Payment, error) {
	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		return nil, fmt.Errorf("payment receive error: %w", err)
	}
	return payment, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	return r.list(ctx, paymentSelect+` ORDER BY p.payment_date, p.id`)
}

func (r *PaymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	return r.list(ctx, paymentSelect+` WHERE p.status = $1 ORDER BY p.payment_date, p.id`, status)
}

func (r *PaymentRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Payment, error) {
	return r.list(ctx, paymentSelect+` ORDER BY p.payment_date DESC, p.id LIMIT $1`, limit)
}

func (r *PaymentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("payments receive error: %w", err)
	}
	defer rows.Close()

	payments := []*domain.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("payment scan error: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) SumCompleted(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1`
	if err := r.db.QueryRowContext(ctx, query, domain.PaymentStatusCompleted).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("completed payments sum error: %w", err)
	}
	return total, nil
}

func (r *PaymentRepository) CountByStatus(ctx context.Context, status domain.PaymentStatus) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM payments WHERE status = $1`, status)
}

func (r *PaymentRepository) CountByPaymentMode(ctx context.Context, paymentModeID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM payments WHERE payment_mode_id = $1`, paymentModeID)
}

func (r *PaymentRepository) count(ctx context.Context, query string, arg interface{}) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&count); err != nil {
		return 0, fmt.Errorf("payment count error: %w", err)
	}
	return count, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, payment_date, payment_mode_id, transaction_id, amount, status, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		payment.ID,
		payment.PaymentDate,
		payment.PaymentMode.ID,
		nullString(payment.TransactionID),
		payment.Amount,
		payment.Status,
		nullString(payment.Remarks),
	)
	if err != nil {
		return fmt.Errorf("payment create error: %w", translateError(err))
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	query := `UPDATE payments SET status = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, payment.ID, payment.Status)
	if err != nil {
		return fmt.Errorf("payment update error: %w", err)
	}
	return expectOneRow(result, fmt.Sprintf("payment %s", payment.ID))
}
