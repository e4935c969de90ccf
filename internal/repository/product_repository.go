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

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productSelect = `
	SELECT p.id, p.name, p.price, p.total_items_in_stock, p.image_url, c.id, c.name
	FROM products p
	JOIN categories c ON c.id = p.category_id
`

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var imageURL sql.NullString

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.TotalItemsInStock,
		&imageURL,
		&product.Category.ID,
		&product.Category.Name,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		product.ImageURL = imageURL.String
	}
	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("product receive error: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, productSelect+` ORDER BY p.name, p.id`)
	if err != nil {
		return nil, fmt.Errorf("products receive error: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("product scan error: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("product count error: %w", err)
	}
	return count, nil
}

func (r *ProductRepository) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(price * total_items_in_stock), 0) FROM products`
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("inventory value error: %w", err)
	}
	return total, nil
}

func (r *ProductRepository) TotalItemsInStock(ctx context.Context) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(total_items_in_stock), 0) FROM products`
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("items in stock error: %w", err)
	}
	return total, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, price, total_items_in_stock, image_url, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.TotalItemsInStock,
		nullString(product.ImageURL),
		product.Category.ID,
	)
	if err != nil {
		return fmt.Errorf("product create error: %w", translateError(err))
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, total_items_in_stock = $4, image_url = $5, category_id = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.TotalItemsInStock,
		nullString(product.ImageURL),
		product.Category.ID,
	)
	if err != nil {
		return fmt.Errorf("product update error: %w", translateError(err))
	}
	return expectOneRow(result, fmt.Sprintf("product %s", product.ID))
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("product delete error: %w", err)
	}
	return expectOneRow(result, fmt.Sprintf("product %s", id))
}
