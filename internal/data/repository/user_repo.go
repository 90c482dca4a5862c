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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role entity.UserRole) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewUserRepository(coll *mongo.Collection, log *zap.Logger) UserRepository {
	return &userRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user document and returns its generated id
func (ur *userRepository) Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := ur.coll.InsertOne(ctx, user); err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return primitive.NilObjectID, fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return user.ID, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := findOne[entity.User](ctx, ur.coll, bson.M{"email": email})
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	users, err := findAll[entity.User](ctx, ur.coll, bson.M{})
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}

	return users, nil
}

func (ur *userRepository) SetRole(ctx context.Context, id primitive.ObjectID, role entity.UserRole) (*UpdateResult, error) {
	result, err := ur.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		ur.log.Error("Failed to set user role",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("set role of user %s: %w", id.Hex(), err)
	}

	return &UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}, nil
}

func (ur *userRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := ur.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.Hex()),
		)
		return 0, fmt.Errorf("delete user %s: %w", id.Hex(), err)
	}

	ur.log.Info("User deleted", zap.String("id", id.Hex()), zap.Int64("deleted", result.DeletedCount))
	return result.DeletedCount, nil
}

func (ur *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := ur.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}
