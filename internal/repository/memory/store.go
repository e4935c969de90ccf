// Package memory keeps every store in process memory. It enforces the same
// unique and foreign-key rules as the PostgreSQL schema and is used for tests
// and for running the service without a database (STORE_DRIVER=memory).
package memory

import (
	"context"
	"sync"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/google/uuid"
)

type Store struct {
	mu   sync.Mutex
	data *dataset
}

func NewStore() *Store {
	return &Store{data: newDataset()}
}

type dataset struct {
	seq        int64
	modes      map[uuid.UUID]domain.PaymentMode
	payments   map[uuid.UUID]paymentRow
	categories map[uuid.UUID]domain.Category
	products   map[uuid.UUID]productRow
}

// Rows keep only the foreign key so reads see the referenced row as it is
// now, like a join would.
type paymentRow struct {
	seq     int64
	payment domain.Payment
	modeID  uuid.UUID
}

type productRow struct {
	seq        int64
	product    domain.Product
	categoryID uuid.UUID
}

func newDataset() *dataset {
	return &dataset{
		modes:      map[uuid.UUID]domain.PaymentMode{},
		payments:   map[uuid.UUID]paymentRow{},
		categories: map[uuid.UUID]domain.Category{},
		products:   map[uuid.UUID]productRow{},
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	c.seq = d.seq
	for k, v := range d.modes {
		c.modes[k] = v
	}
	for k, v := range d.payments {
		c.payments[k] = v
	}
	for k, v := range d.categories {
		c.categories[k] = v
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	return c
}

func (d *dataset) next() int64 {
	d.seq++
	return d.seq
}

// view runs store calls either against the shared dataset under the lock or
// against a transaction's private copy.
type view struct {
	store *Store
	tx    *dataset
}

func (v view) with(fn func(d *dataset) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.data)
}

func (v view) stores() repository.Stores {
	return repository.Stores{
		PaymentModes: &paymentModeStore{view: v},
		Payments:     &paymentStore{view: v},
		Categories:   &categoryStore{view: v},
		Products:     &productStore{view: v},
	}
}

func (s *Store) Stores() repository.Stores {
	return view{store: s}.stores()
}

// WithinTransaction serializes transactions: fn works on a copy of the data
// that replaces the shared dataset only when fn succeeds.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, stores repository.Stores) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, view{store: s, tx: work}.stores()); err != nil {
		return err
	}
	s.data = work
	return nil
}
