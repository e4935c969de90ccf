package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/events"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/google/uuid"
)

type ProductService struct {
	uow       repository.UnitOfWork
	publisher events.Publisher
}

func NewProductService(uow repository.UnitOfWork, publisher events.Publisher) *ProductService {
	return &ProductService{uow: uow, publisher: publisherOrNop(publisher)}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.uow.Stores().Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.uow.Stores().Products.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Product not found with id: %s", id)
	}
	return product, nil
}

func (s *ProductService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.uow.Stores().Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, request domain.ProductRequest) (*domain.Product, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	var product *domain.Product
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		category, err := stores.Categories.GetByID(ctx, request.CategoryID)
		if err != nil {
			return notFoundOr(err, "Category not found with id: %s", request.CategoryID)
		}

		product = domain.NewProduct(request.Name, *request.Price, *request.TotalItemsInStock, request.ImageURL, *category)
		if err := stores.Products.Create(ctx, product); err != nil {
			return fmt.Errorf("product create error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Product created: %s (%s)", product.Name, product.ID)
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, request domain.ProductRequest) (*domain.Product, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	var product *domain.Product
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		var err error
		product, err = stores.Products.GetByID(ctx, id)
		if err != nil {
			return notFoundOr(err, "Product not found with id: %s", id)
		}
		category, err := stores.Categories.GetByID(ctx, request.CategoryID)
		if err != nil {
			return notFoundOr(err, "Category not found with id: %s", request.CategoryID)
		}

		product.Apply(request, *category)
		if err := stores.Products.Update(ctx, product); err != nil {
			return fmt.Errorf("product update error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.uow.Stores().Products.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Product not found with id: %s", id)
	}
	log.Printf("Product deleted: %s", id)
	return nil
}

// ReduceStock reads the product, checks the quantity is available, then
// writes the new level. Concurrent calls can both pass the check.
func (s *ProductService) ReduceStock(ctx context.Context, id uuid.UUID, request domain.ReduceStockRequest) (*domain.Product, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	var product *domain.Product
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		var err error
		product, err = stores.Products.GetByID(ctx, id)
		if err != nil {
			return notFoundOr(err, "Product not found with id: %s", id)
		}
		if err := product.ReduceStock(request.Quantity); err != nil {
			return err
		}
		if err := stores.Products.Update(ctx, product); err != nil {
			return fmt.Errorf("product stock update error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Stock reduced: %s by %d, remaining %d", product.Name, request.Quantity, product.TotalItemsInStock)
	publishEvent(ctx, s.publisher, events.ProductStockReducedEvent, events.ProductStockReducedPayload{
		ProductID: product.ID,
		Quantity:  request.Quantity,
		Remaining: product.TotalItemsInStock,
	})
	return product, nil
}
