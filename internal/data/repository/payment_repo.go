package repository

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	Count(ctx context.Context) (int64, error)

	// Aggregations
	TotalRevenue(ctx context.Context) (float64, error)
	CategoryStats(ctx context.Context) ([]*entity.CategoryStats, error)
}

type paymentRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewPaymentRepository(coll *mongo.Collection, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) (primitive.ObjectID, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("email", payment.Email),
			zap.String("transaction_id", payment.TransactionID),
		)
		return primitive.NilObjectID, fmt.Errorf("create payment %s: %w", payment.TransactionID, err)
	}

	return payment.ID, nil
}

func (r *paymentRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	payments, err := findAll[entity.Payment](ctx, r.coll, bson.M{"email": email}, newestFirst())
	if err != nil {
		r.log.Error("Failed to find payments by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find payments of %s: %w", email, err)
	}

	return payments, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := findAll[entity.Payment](ctx, r.coll, bson.M{}, newestFirst())
	if err != nil {
		r.log.Error("Failed to get all payments", zap.Error(err))
		return nil, fmt.Errorf("find all payments: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		r.log.Error("Database error counting payments", zap.Error(err))
		return 0, fmt.Errorf("count payments: %w", err)
	}

	return count, nil
}

// TotalRevenue sums price over all payments on the server; no payments yields 0.
func (r *paymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	cur, err := r.coll.Aggregate(ctx, revenuePipeline())
	if err != nil {
		r.log.Error("Failed to aggregate revenue", zap.Error(err))
		return 0, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		r.log.Error("Failed to decode revenue", zap.Error(err))
		return 0, fmt.Errorf("decode revenue: %w", err)
	}

	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

// CategoryStats joins every purchased menu item id against the menu and groups
// by category. Ids no longer in the menu drop out at the second $unwind.
func (r *paymentRepository) CategoryStats(ctx context.Context) ([]*entity.CategoryStats, error) {
	cur, err := r.coll.Aggregate(ctx, orderStatsPipeline())
	if err != nil {
		r.log.Error("Failed to aggregate order stats", zap.Error(err))
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	defer cur.Close(ctx)

	stats := make([]*entity.CategoryStats, 0)
	if err := cur.All(ctx, &stats); err != nil {
		r.log.Error("Failed to decode order stats", zap.Error(err))
		return nil, fmt.Errorf("decode order stats: %w", err)
	}

	return stats, nil
}

func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.MenuCollection},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItemData"},
		}}},
		{{Key: "$unwind", Value: "$menuItemData"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItemData.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$menuItemData.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$totalRevenue"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
	}
}
