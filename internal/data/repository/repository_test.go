package repository_test

import (
	"testing"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestUserRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	repo := repository.NewRepository(db, zap.NewNop())

	missing, err := repo.User.FindByEmail(ctx, "ann@bistro.test")
	require.NoError(t, err)
	assert.Nil(t, missing)

	id, err := repo.User.Create(ctx, &entity.User{Name: "Ann", Email: "ann@bistro.test", Extra: bson.M{"uid": "firebase-123"}})
	require.NoError(t, err)

	found, err := repo.User.FindByEmail(ctx, "ann@bistro.test")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, id, found.ID)
	assert.False(t, found.IsAdmin())
	assert.Equal(t, "firebase-123", found.Extra["uid"])

	result, err := repo.User.SetRole(ctx, id, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(1), result.ModifiedCount)

	found, err = repo.User.FindByEmail(ctx, "ann@bistro.test")
	require.NoError(t, err)
	assert.True(t, found.IsAdmin())

	count, err := repo.User.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := repo.User.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestMenuRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	repo := repository.NewRepository(db, zap.NewNop())

	id, err := repo.Menu.Create(ctx, &entity.MenuItem{Name: "Soup", Category: "soup", Price: 4, Image: "soup.png"})
	require.NoError(t, err)

	price, recipe := 5.0, "stock"
	result, err := repo.Menu.Update(ctx, id, repository.MenuUpdate{Price: &price, Recipe: &recipe})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)

	item, err := repo.Menu.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 5.0, item.Price)
	assert.Equal(t, "stock", item.Recipe)
	assert.Equal(t, "Soup", item.Name)
	assert.Equal(t, "soup", item.Category)
	assert.Equal(t, "soup.png", item.Image)

	none, err := repo.Menu.FindByID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCartRepository_DeleteMany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	repo := repository.NewRepository(db, zap.NewNop())

	var ids []primitive.ObjectID
	for _, name := range []string{"a", "b", "c"} {
		id, err := repo.Cart.Create(ctx, &entity.CartItem{Email: "ann@bistro.test", Name: name, MenuID: primitive.NewObjectID().Hex()})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	n, err := repo.Cart.DeleteMany(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Cart.DeleteMany(ctx, ids[:2])
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	left, err := repo.Cart.FindByEmail(ctx, "ann@bistro.test")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, ids[2], left[0].ID)
}

func TestPaymentRepository_Aggregations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	repo := repository.NewRepository(db, zap.NewNop())

	revenue, err := repo.Payment.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Zero(t, revenue)

	stats, err := repo.Payment.CategoryStats(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats)

	saladID, err := repo.Menu.Create(ctx, &entity.MenuItem{Name: "Caesar", Category: "salad", Price: 6})
	require.NoError(t, err)
	soupID, err := repo.Menu.Create(ctx, &entity.MenuItem{Name: "Tomato", Category: "soup", Price: 4})
	require.NoError(t, err)

	_, err = repo.Payment.Create(ctx, &entity.Payment{
		Email: "ann@bistro.test", Price: 12, TransactionID: "pi_1",
		CartIDs: []primitive.ObjectID{}, MenuItemIDs: []primitive.ObjectID{saladID, saladID},
		Status: entity.PaymentStatusPending,
	})
	require.NoError(t, err)
	_, err = repo.Payment.Create(ctx, &entity.Payment{
		Email: "bob@bistro.test", Price: 4, TransactionID: "pi_2",
		CartIDs: []primitive.ObjectID{}, MenuItemIDs: []primitive.ObjectID{soupID, primitive.NewObjectID()},
		Status: entity.PaymentStatusPending,
	})
	require.NoError(t, err)

	revenue, err = repo.Payment.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 16.0, revenue)

	stats, err = repo.Payment.CategoryStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, entity.CategoryStats{Category: "salad", Quantity: 2, Revenue: 12}, *stats[0])
	assert.Equal(t, entity.CategoryStats{Category: "soup", Quantity: 1, Revenue: 4}, *stats[1])

	annPayments, err := repo.Payment.FindByEmail(ctx, "ann@bistro.test")
	require.NoError(t, err)
	require.Len(t, annPayments, 1)

	all, err := repo.Payment.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "pi_2", all[0].TransactionID)
}
