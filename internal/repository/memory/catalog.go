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

type categoryStore struct {
	view
}

func (s *categoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	var found *domain.Category
	err := s.with(func(d *dataset) error {
		category, ok := d.categories[id]
		if !ok {
			return fmt.Errorf("category %s: %w", id, repository.ErrNotFound)
		}
		found = &category
		return nil
	})
	return found, err
}

func (s *categoryStore) List(_ context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	err := s.with(func(d *dataset) error {
		for _, category := range d.categories {
			category := category
			categories = append(categories, &category)
		}
		return nil
	})
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, err
}

func (s *categoryStore) Count(_ context.Context) (int64, error) {
	var count int64
	err := s.with(func(d *dataset) error {
		count = int64(len(d.categories))
		return nil
	})
	return count, err
}

func (s *categoryStore) Create(_ context.Context, category *domain.Category) error {
	return s.with(func(d *dataset) error {
		for id, existing := range d.categories {
			if id == category.ID || existing.Name == category.Name {
				return fmt.Errorf("category create error: %w: %s", repository.ErrDuplicate, category.Name)
			}
		}
		d.categories[category.ID] = *category
		return nil
	})
}

type productStore struct {
	view
}

func (d *dataset) resolveProduct(row productRow) *domain.Product {
	product := row.product
	product.Category = d.categories[row.categoryID]
	return &product
}

func (s *productStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	var found *domain.Product
	err := s.with(func(d *dataset) error {
		row, ok := d.products[id]
		if !ok {
			return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
		}
		found = d.resolveProduct(row)
		return nil
	})
	return found, err
}

func (s *productStore) List(_ context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	err := s.with(func(d *dataset) error {
		rows := make([]productRow, 0, len(d.products))
		for _, row := range d.products {
			rows = append(rows, row)
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].product.Name != rows[j].product.Name {
				return rows[i].product.Name < rows[j].product.Name
			}
			return rows[i].seq < rows[j].seq
		})
		for _, row := range rows {
			products = append(products, d.resolveProduct(row))
		}
		return nil
	})
	return products, err
}

func (s *productStore) Count(_ context.Context) (int64, error) {
	var count int64
	err := s.with(func(d *dataset) error {
		count = int64(len(d.products))
		return nil
	})
	return count, err
}

func (s *productStore) TotalInventoryValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	err := s.with(func(d *dataset) error {
		for _, row := range d.products {
			total = total.Add(row.product.InventoryValue())
		}
		return nil
	})
	return total, err
}

func (s *productStore) TotalItemsInStock(_ context.Context) (int64, error) {
	var total int64
	err := s.with(func(d *dataset) error {
		for _, row := range d.products {
			total += int64(row.product.TotalItemsInStock)
		}
		return nil
	})
	return total, err
}

func (s *productStore) Create(_ context.Context, product *domain.Product) error {
	return s.with(func(d *dataset) error {
		if _, ok := d.products[product.ID]; ok {
			return fmt.Errorf("product create error: %w: products_pkey", repository.ErrDuplicate)
		}
		if _, ok := d.categories[product.Category.ID]; !ok {
			return fmt.Errorf("product create error: %w: products_category_id_fkey", repository.ErrReferenced)
		}
		d.products[product.ID] = productRow{seq: d.next(), product: *product, categoryID: product.Category.ID}
		return nil
	})
}

func (s *productStore) Update(_ context.Context, product *domain.Product) error {
	return s.with(func(d *dataset) error {
		row, ok := d.products[product.ID]
		if !ok {
			return fmt.Errorf("product %s: %w", product.ID, repository.ErrNotFound)
		}
		if _, ok := d.categories[product.Category.ID]; !ok {
			return fmt.Errorf("product update error: %w: products_category_id_fkey", repository.ErrReferenced)
		}
		row.product = *product
		row.categoryID = product.Category.ID
		d.products[product.ID] = row
		return nil
	})
}

func (s *productStore) Delete(_ context.Context, id uuid.UUID) error {
	return s.with(func(d *dataset) error {
		if _, ok := d.products[id]; !ok {
			return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
		}
		delete(d.products, id)
		return nil
	})
}
