package repository

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]*entity.Review, error)
}

type reviewRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewReviewRepository(coll *mongo.Collection, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := findAll[entity.Review](ctx, r.coll, bson.M{})
	if err != nil {
		r.log.Error("Failed to get reviews", zap.Error(err))
		return nil, fmt.Errorf("find all reviews: %w", err)
	}

	return reviews, nil
}
