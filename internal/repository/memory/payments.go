package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type paymentStore struct {
	view
}

func (d *dataset) resolvePayment(row paymentRow) *domain.Payment {
	payment := row.payment
	payment.PaymentMode = d.modes[row.modeID]
	return &payment
}

func (s *paymentStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	var found *domain.Payment
	err := s.with(func(d *dataset) error {
		row, ok := d.payments[id]
		if !ok {
			return fmt.Errorf("payment %s: %w", id, repository.ErrNotFound)
		}
		found = d.resolvePayment(row)
		return nil
	})
	return found, err
}

func (s *paymentStore) GetByTransactionID(_ context.Context, transactionID string) (*domain.Payment, error) {
	var found *domain.Payment
	err := s.with(func(d *dataset) error {
		var latest *paymentRow
		for _, row := range d.payments {
			if transactionID == "" || row.payment.TransactionID != transactionID {
				continue
			}
			if latest == nil || newer(row, *latest) {
				row := row
				latest = &row
			}
		}
		if latest == nil {
			return fmt.Errorf("payment with transaction %q: %w", transactionID, repository.ErrNotFound)
		}
		found = d.resolvePayment(*latest)
		return nil
	})
	return found, err
}

func (s *paymentStore) List(_ context.Context) ([]*domain.Payment, error) {
	return s.list(func(domain.Payment) bool { return true }, false, 0)
}

func (s *paymentStore) ListByStatus(_ context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	return s.list(func(p domain.Payment) bool { return p.Status == status }, false, 0)
}

func (s *paymentStore) ListRecent(_ context.Context, limit int) ([]*domain.Payment, error) {
	return s.list(func(domain.Payment) bool { return true }, true, limit)
}

func (s *paymentStore) list(keep func(domain.Payment) bool, newestFirst bool, limit int) ([]*domain.Payment, error) {
	payments := []*domain.Payment{}
	err := s.with(func(d *dataset) error {
		rows := make([]paymentRow, 0, len(d.payments))
		for _, row := range d.payments {
			if keep(row.payment) {
				rows = append(rows, row)
			}
		}
		sort.Slice(rows, func(i, j int) bool {
			if newestFirst {
				return newer(rows[i], rows[j])
			}
			return newer(rows[j], rows[i])
		})
		if limit > 0 && len(rows) > limit {
			rows = rows[:limit]
		}
		for _, row := range rows {
			payments = append(payments, d.resolvePayment(row))
		}
		return nil
	})
	return payments, err
}

func newer(a, b paymentRow) bool {
	if !a.payment.PaymentDate.Equal(b.payment.PaymentDate) {
		return a.payment.PaymentDate.After(b.payment.PaymentDate)
	}
	return a.seq > b.seq
}

func (s *paymentStore) SumCompleted(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	err := s.with(func(d *dataset) error {
		for _, row := range d.payments {
			if row.payment.Status == domain.PaymentStatusCompleted {
				total = total.Add(row.payment.Amount)
			}
		}
		return nil
	})
	return total, err
}

func (s *paymentStore) CountByStatus(_ context.Context, status domain.PaymentStatus) (int64, error) {
	return s.count(func(row paymentRow) bool { return row.payment.Status == status })
}

func (s *paymentStore) CountByPaymentMode(_ context.Context, paymentModeID uuid.UUID) (int64, error) {
	return s.count(func(row paymentRow) bool { return row.modeID == paymentModeID })
}

func (s *paymentStore) count(match func(paymentRow) bool) (int64, error) {
	var count int64
	err := s.with(func(d *dataset) error {
		for _, row := range d.payments {
			if match(row) {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (s *paymentStore) Create(_ context.Context, payment *domain.Payment) error {
	return s.with(func(d *dataset) error {
		if _, ok := d.payments[payment.ID]; ok {
			return fmt.Errorf("payment create error: %w: payments_pkey", repository.ErrDuplicate)
		}
		if _, ok := d.modes[payment.PaymentMode.ID]; !ok {
			return fmt.Errorf("payment create error: %w: payments_payment_mode_id_fkey", repository.ErrReferenced)
		}
		stored := *payment
		stored.PaymentMode = domain.PaymentMode{}
		d.payments[payment.ID] = paymentRow{seq: d.next(), payment: stored, modeID: payment.PaymentMode.ID}
		return nil
	})
}

func (s *paymentStore) Update(_ context.Context, payment *domain.Payment) error {
	return s.with(func(d *dataset) error {
		row, ok := d.payments[payment.ID]
		if !ok {
			return fmt.Errorf("payment %s: %w", payment.ID, repository.ErrNotFound)
		}
		row.payment.Status = payment.Status
		d.payments[payment.ID] = row
		return nil
	})
}
