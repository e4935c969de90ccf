// Package seed loads the demo catalog and the default payment modes into an
// empty store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Categories   []CategorySeed `yaml:"categories"`
	PaymentModes []string       `yaml:"payment_modes"`
}

type CategorySeed struct {
	Name     string        `yaml:"name"`
	Products []ProductSeed `yaml:"products"`
}

type ProductSeed struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Stock    int    `yaml:"stock"`
	ImageURL string `yaml:"image_url"`
}

type Result struct {
	Categories   int
	Products     int
	PaymentModes int
}

func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	return &catalog, nil
}

// Run seeds the catalog when there are no categories and the payment modes
// when there are no modes. Running it twice adds nothing.
func Run(ctx context.Context, uow repository.UnitOfWork, catalog *Catalog) (Result, error) {
	var result Result

	err := uow.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		categoryCount, err := stores.Categories.Count(ctx)
		if err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		if categoryCount == 0 {
			if err := seedCatalog(ctx, stores, catalog.Categories, &result); err != nil {
				return err
			}
		}

		modeCount, err := stores.PaymentModes.Count(ctx)
		if err != nil {
			return fmt.Errorf("count payment modes: %w", err)
		}
		if modeCount == 0 {
			for _, name := range catalog.PaymentModes {
				if err := stores.PaymentModes.Create(ctx, domain.NewPaymentMode(name, true)); err != nil {
					return fmt.Errorf("seed payment mode %q: %w", name, err)
				}
				result.PaymentModes++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Printf("Seed data loaded: %d categories, %d products, %d payment modes",
		result.Categories, result.Products, result.PaymentModes)
	return result, nil
}

func seedCatalog(ctx context.Context, stores repository.Stores, categories []CategorySeed, result *Result) error {
	for _, categorySeed := range categories {
		category := domain.NewCategory(categorySeed.Name)
		if err := stores.Categories.Create(ctx, category); err != nil {
			return fmt.Errorf("seed category %q: %w", categorySeed.Name, err)
		}
		result.Categories++

		for _, productSeed := range categorySeed.Products {
			price, err := decimal.NewFromString(productSeed.Price)
			if err != nil {
				return fmt.Errorf("seed product %q price: %w", productSeed.Name, err)
			}
			product := domain.NewProduct(productSeed.Name, price, productSeed.Stock, productSeed.ImageURL, *category)
			if err := stores.Products.Create(ctx, product); err != nil {
				return fmt.Errorf("seed product %q: %w", productSeed.Name, err)
			}
			result.Products++
		}
	}
	return nil
}
