package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/google/uuid"
)

type PaymentModeRepository struct {
	db DBTX
}

func NewPaymentModeRepository(db DBTX) *PaymentModeRepository {
	return &PaymentModeRepository{db: db}
}

const paymentModeColumns = `id, mode, is_active`

func (r *PaymentModeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error) {
	query := `SELECT ` + paymentModeColumns + ` FROM payment_modes WHERE id = $1`
	return r.getOne(ctx, fmt.Sprintf("payment mode %s", id), query, id)
}

func (r *PaymentModeRepository) GetByName(ctx context.Context, mode string) (*domain.PaymentMode, error) {
	query := `SELECT ` + paymentModeColumns + ` FROM payment_modes WHERE mode = $1`
	return r.getOne(ctx, fmt.Sprintf("payment mode %q", mode), query, mode)
}

func (r *PaymentModeRepository) getOne(ctx context.Context, what, query string, arg interface{}) (*domain.PaymentMode, error) {
	mode := &domain.PaymentMode{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&mode.ID, &mode.Mode, &mode.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		return nil, fmt.Errorf("payment mode receive error: %w", err)
	}
	return mode, nil
}

func (r *PaymentModeRepository) List(ctx context.Context) ([]*domain.PaymentMode, error) {
	query := `SELECT ` + paymentModeColumns + ` FROM payment_modes ORDER BY mode`
	return r.list(ctx, query)
}

func (r *PaymentModeRepository) ListActive(ctx context.Context) ([]*domain.PaymentMode, error) {
	query := `SELECT ` + paymentModeColumns + ` FROM payment_modes WHERE is_active = TRUE ORDER BY mode`
	return r.list(ctx, query)
}

func (r *PaymentModeRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.PaymentMode, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("payment modes receive error: %w", err)
	}
	defer rows.Close()

	modes := []*domain.PaymentMode{}
	for rows.Next() {
		mode := &domain.PaymentMode{}
		if err := rows.Scan(&mode.ID, &mode.Mode, &mode.IsActive); err != nil {
			return nil, fmt.Errorf("payment mode scan error: %w", err)
		}
		modes = append(modes, mode)
	}
	return modes, rows.Err()
}

func (r *PaymentModeRepository) ExistsByName(ctx context.Context, mode string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM payment_modes WHERE mode = $1)`
	if err := r.db.QueryRowContext(ctx, query, mode).Scan(&exists); err != nil {
		return false, fmt.Errorf("payment mode exists check error: %w", err)
	}
	return exists, nil
}

func (r *PaymentModeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payment_modes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("payment mode count error: %w", err)
	}
	return count, nil
}

func (r *PaymentModeRepository) Create(ctx context.Context, mode *domain.PaymentMode) error {
	query := `INSERT INTO payment_modes (id, mode, is_active) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, mode.ID, mode.Mode, mode.IsActive); err != nil {
		return fmt.Errorf("payment mode create error: %w", translateError(err))
	}
	return nil
}

func (r *PaymentModeRepository) Update(ctx context.Context, mode *domain.PaymentMode) error {
	query := `UPDATE payment_modes SET mode = $2, is_active = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, mode.ID, mode.Mode, mode.IsActive)
	if err != nil {
		return fmt.Errorf("payment mode update error: %w", translateError(err))
	}
	return expectOneRow(result, fmt.Sprintf("payment mode %s", mode.ID))
}

// Delete removes the row if present; deleting a missing id is not an error.
func (r *PaymentModeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payment_modes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("payment mode delete error: %w", translateError(err))
	}
	return nil
}
