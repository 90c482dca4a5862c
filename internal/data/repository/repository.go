package repository

import (
	"context"
	"errors"

	"bistro-boss/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Menu    MenuRepository
	Review  ReviewRepository
	Cart    CartRepository
	Payment PaymentRepository
}

func NewRepository(db *database.DB, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db.Users(), log),
		Menu:    NewMenuRepository(db.Menu(), log),
		Review:  NewReviewRepository(db.Reviews(), log),
		Cart:    NewCartRepository(db.Cart(), log),
		Payment: NewPaymentRepository(db.Payments(), log),
	}
}

// UpdateResult mirrors the counters of a single-document update.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
}

// newestFirst sorts by _id descending; ObjectIDs grow with insertion time.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
}

// findAll decodes every document matching filter.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]*T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// findOne returns nil, nil when nothing matches.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var item T
	err := coll.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
