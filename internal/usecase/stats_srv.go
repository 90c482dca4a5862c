package usecase

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/response"

	"go.uber.org/zap"
)

type StatsService interface {
	AdminStats(ctx context.Context) (*response.AdminStatsResponse, error)
	OrderStats(ctx context.Context) ([]*entity.CategoryStats, error)
}

type statsService struct {
	userRepo    repository.UserRepository
	menuRepo    repository.MenuRepository
	paymentRepo repository.PaymentRepository
	log         *zap.Logger
}

func NewStatsService(repo *repository.Repository, log *zap.Logger) StatsService {
	return &statsService{
		userRepo:    repo.User,
		menuRepo:    repo.Menu,
		paymentRepo: repo.Payment,
		log:         log.With(zap.String("service", "stats")),
	}
}

func (s *statsService) AdminStats(ctx context.Context) (*response.AdminStatsResponse, error) {
	customers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	products, err := s.menuRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}

	orders, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	revenue, err := s.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	return &response.AdminStatsResponse{
		Customers: customers,
		Products:  products,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

// OrderStats reports units sold and revenue per menu category.
func (s *statsService) OrderStats(ctx context.Context) ([]*entity.CategoryStats, error) {
	stats, err := s.paymentRepo.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}

	s.log.Debug("Order stats computed", zap.Int("categories", len(stats)))
	return stats, nil
}
