package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/google/uuid"
)

type paymentModeStore struct {
	view
}

func (s *paymentModeStore) GetByID(_ context.Context, id uuid.UUID) (*domain.PaymentMode, error) {
	var found *domain.PaymentMode
	err := s.with(func(d *dataset) error {
		mode, ok := d.modes[id]
		if !ok {
			return fmt.Errorf("payment mode %s: %w", id, repository.ErrNotFound)
		}
		found = &mode
		return nil
	})
	return found, err
}

func (s *paymentModeStore) GetByName(_ context.Context, name string) (*domain.PaymentMode, error) {
	var found *domain.PaymentMode
	err := s.with(func(d *dataset) error {
		for _, mode := range d.modes {
			if mode.Mode == name {
				mode := mode
				found = &mode
				return nil
			}
		}
		return fmt.Errorf("payment mode %q: %w", name, repository.ErrNotFound)
	})
	return found, err
}

func (s *paymentModeStore) List(_ context.Context) ([]*domain.PaymentMode, error) {
	return s.list(func(domain.PaymentMode) bool { return true })
}

func (s *paymentModeStore) ListActive(_ context.Context) ([]*domain.PaymentMode, error) {
	return s.list(func(mode domain.PaymentMode) bool { return mode.IsActive })
}

func (s *paymentModeStore) list(keep func(domain.PaymentMode) bool) ([]*domain.PaymentMode, error) {
	modes := []*domain.PaymentMode{}
	err := s.with(func(d *dataset) error {
		for _, mode := range d.modes {
			if keep(mode) {
				mode := mode
				modes = append(modes, &mode)
			}
		}
		return nil
	})
	sort.Slice(modes, func(i, j int) bool { return modes[i].Mode < modes[j].Mode })
	return modes, err
}

func (s *paymentModeStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.with(func(d *dataset) error {
		exists = d.modeNameTaken(name, uuid.Nil)
		return nil
	})
	return exists, err
}

func (s *paymentModeStore) Count(_ context.Context) (int64, error) {
	var count int64
	err := s.with(func(d *dataset) error {
		count = int64(len(d.modes))
		return nil
	})
	return count, err
}

func (s *paymentModeStore) Create(_ context.Context, mode *domain.PaymentMode) error {
	return s.with(func(d *dataset) error {
		if _, ok := d.modes[mode.ID]; ok || d.modeNameTaken(mode.Mode, uuid.Nil) {
			return fmt.Errorf("payment mode create error: %w: %s", repository.ErrDuplicate, mode.Mode)
		}
		d.modes[mode.ID] = *mode
		return nil
	})
}

func (s *paymentModeStore) Update(_ context.Context, mode *domain.PaymentMode) error {
	return s.with(func(d *dataset) error {
		if _, ok := d.modes[mode.ID]; !ok {
			return fmt.Errorf("payment mode %s: %w", mode.ID, repository.ErrNotFound)
		}
		if d.modeNameTaken(mode.Mode, mode.ID) {
			return fmt.Errorf("payment mode update error: %w: %s", repository.ErrDuplicate, mode.Mode)
		}
		d.modes[mode.ID] = *mode
		return nil
	})
}

func (s *paymentModeStore) Delete(_ context.Context, id uuid.UUID) error {
	return s.with(func(d *dataset) error {
		for _, row := range d.payments {
			if row.modeID == id {
				return fmt.Errorf("payment mode delete error: %w: payments_payment_mode_id_fkey", repository.ErrReferenced)
			}
		}
		delete(d.modes, id)
		return nil
	})
}

func (d *dataset) modeNameTaken(name string, except uuid.UUID) bool {
	for id, mode := range d.modes {
		if id != except && mode.Mode == name {
			return true
		}
	}
	return false
}
