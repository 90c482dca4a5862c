package repository

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CartRepository interface {
	Create(ctx context.Context, item *entity.CartItem) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.CartItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type cartRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewCartRepository(coll *mongo.Collection, log *zap.Logger) CartRepository {
	return &cartRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) Create(ctx context.Context, item *entity.CartItem) (primitive.ObjectID, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		r.log.Error("Failed to add cart item",
			zap.Error(err),
			zap.String("email", item.Email),
			zap.String("menu_id", item.MenuID),
		)
		return primitive.NilObjectID, fmt.Errorf("create cart item for %s: %w", item.Email, err)
	}

	return item.ID, nil
}

func (r *cartRepository) FindByEmail(ctx context.Context, email string) ([]*entity.CartItem, error) {
	items, err := findAll[entity.CartItem](ctx, r.coll, bson.M{"email": email})
	if err != nil {
		r.log.Error("Failed to find cart items",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find cart items of %s: %w", email, err)
	}

	return items, nil
}

func (r *cartRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete cart item",
			zap.Error(err),
			zap.String("cart_id", id.Hex()),
		)
		return 0, fmt.Errorf("delete cart item %s: %w", id.Hex(), err)
	}

	return result.DeletedCount, nil
}

// DeleteMany removes every cart item whose _id is in ids with a single $in query.
func (r *cartRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.log.Error("Failed to clear cart items",
			zap.Error(err),
			zap.Int("ids", len(ids)),
		)
		return 0, fmt.Errorf("delete %d cart items: %w", len(ids), err)
	}

	return result.DeletedCount, nil
}
