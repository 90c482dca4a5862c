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

// MenuUpdate holds the fields PATCH /menu/{id} may overwrite. Nil fields are
// left as stored.
type MenuUpdate struct {
	Name     *string  `bson:"name,omitempty"`
	Category *string  `bson:"category,omitempty"`
	Price    *float64 `bson:"price,omitempty"`
	Recipe   *string  `bson:"recipe,omitempty"`
}

func (u MenuUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Price == nil && u.Recipe == nil
}

type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error)
	FindAll(ctx context.Context) ([]*entity.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, update MenuUpdate) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type menuRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMenuRepository(coll *mongo.Collection, log *zap.Logger) MenuRepository {
	return &menuRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "menu")),
	}
}

func (r *menuRepository) Create(ctx context.Context, item *entity.MenuItem) (primitive.ObjectID, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("name", item.Name),
			zap.String("category", item.Category),
		)
		return primitive.NilObjectID, fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return item.ID, nil
}

func (r *menuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	item, err := findOne[entity.MenuItem](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.String("menu_id", id.Hex()),
		)
		return nil, fmt.Errorf("find menu item by ID %s: %w", id.Hex(), err)
	}

	return item, nil
}

func (r *menuRepository) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := findAll[entity.MenuItem](ctx, r.coll, bson.M{})
	if err != nil {
		r.log.Error("Failed to get menu", zap.Error(err))
		return nil, fmt.Errorf("find all menu items: %w", err)
	}

	return items, nil
}

func (r *menuRepository) Update(ctx context.Context, id primitive.ObjectID, update MenuUpdate) (*UpdateResult, error) {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
	)
	if err != nil {
		r.log.Error("Failed to update menu item",
			zap.Error(err),
			zap.String("menu_id", id.Hex()),
		)
		return nil, fmt.Errorf("update menu item %s: %w", id.Hex(), err)
	}

	return &UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}, nil
}

func (r *menuRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.String("menu_id", id.Hex()),
		)
		return 0, fmt.Errorf("delete menu item %s: %w", id.Hex(), err)
	}

	r.log.Info("Menu item deleted", zap.String("menu_id", id.Hex()), zap.Int64("deleted", result.DeletedCount))
	return result.DeletedCount, nil
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		r.log.Error("Database error counting menu items", zap.Error(err))
		return 0, fmt.Errorf("count menu items: %w", err)
	}

	return count, nil
}
