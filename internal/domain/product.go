package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewCategory(name string) *Category {
	return &Category{ID: uuid.New(), Name: name}
}

type Product struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	TotalItemsInStock int             `json:"totalItemsInStock"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	Category          Category        `json:"category"`
}

func NewProduct(name string, price decimal.Decimal, stock int, imageURL string, category Category) *Product {
	return &Product{
		ID:                uuid.New(),
		Name:              name,
		Price:             price.Round(2),
		TotalItemsInStock: stock,
		ImageURL:          imageURL,
		Category:          category,
	}
}

func (p *Product) CanReduce(quantity int) bool {
	return p.TotalItemsInStock >= quantity
}

func (p *Product) ReduceStock(quantity int) error {
	if !p.CanReduce(quantity) {
		return NewInvalidStateError("Insufficient stock for %s: available=%d, requested=%d",
			p.Name, p.TotalItemsInStock, quantity)
	}
	p.TotalItemsInStock -= quantity
	return nil
}

func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.TotalItemsInStock)))
}

// Apply overwrites every editable field from a validated request.
func (p *Product) Apply(request ProductRequest, category Category) {
	p.Name = request.Name
	p.Price = request.Price.Round(2)
	p.TotalItemsInStock = *request.TotalItemsInStock
	p.ImageURL = request.ImageURL
	p.Category = category
}

type ProductRequest struct {
	Name              string           `json:"name"`
	Price             *decimal.Decimal `json:"price"`
	TotalItemsInStock *int             `json:"totalItemsInStock"`
	ImageURL          string           `json:"imageUrl"`
	CategoryID        uuid.UUID        `json:"categoryId"`
}

func (r ProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("Product name is required")
	}
	if r.Price == nil || r.Price.IsNegative() {
		return NewValidationError("Price must be zero or greater")
	}
	if r.TotalItemsInStock == nil || *r.TotalItemsInStock < 0 {
		return NewValidationError("Stock must be zero or greater")
	}
	if r.CategoryID == uuid.Nil {
		return NewValidationError("Category ID is required")
	}
	return nil
}

type ReduceStockRequest struct {
	Quantity int `json:"quantity"`
}

func (r ReduceStockRequest) Validate() error {
	if r.Quantity <= 0 {
		return NewValidationError("Quantity must be greater than zero")
	}
	return nil
}
