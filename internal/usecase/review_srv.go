package usecase

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"

	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context) ([]*entity.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	log        *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	s.log.Debug("Reviews retrieved", zap.Int("count", len(reviews)))
	return reviews, nil
}
