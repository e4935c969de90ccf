package service

import (
	"context"
	"fmt"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	uow repository.UnitOfWork
}

func NewDashboardService(uow repository.UnitOfWork) *DashboardService {
	return &DashboardService{uow: uow}
}

// GetDashboardStats runs the independent reads concurrently. They are not
// taken from one snapshot.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stores := s.uow.Stores()
	stats := &domain.DashboardStats{}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := stores.Products.Count(ctx)
		if err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		stats.TotalProducts = count
		return nil
	})
	group.Go(func() error {
		categories, err := stores.Categories.List(ctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		stats.Categories = make([]domain.Category, 0, len(categories))
		for _, category := range categories {
			stats.Categories = append(stats.Categories, *category)
		}
		return nil
	})
	group.Go(func() error {
		value, err := stores.Products.TotalInventoryValue(ctx)
		if err != nil {
			return fmt.Errorf("total inventory value: %w", err)
		}
		stats.TotalValue = domain.NewMoney(value)
		return nil
	})
	group.Go(func() error {
		items, err := stores.Products.TotalItemsInStock(ctx)
		if err != nil {
			return fmt.Errorf("total items in stock: %w", err)
		}
		stats.TotalItemsInStock = items
		return nil
	})
	group.Go(func() error {
		payments, err := stores.Payments.ListRecent(ctx, domain.RecentPaymentsLimit)
		if err != nil {
			return fmt.Errorf("recent payments: %w", err)
		}
		stats.RecentPayments = domain.ToPaymentViews(payments)
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
