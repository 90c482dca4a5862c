package usecase

import (
	"context"
	"errors"
	"testing"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdminStats_Empty(t *testing.T) {
	srv := NewStatsService(testutil.NewStore().Repository(), testLogger())

	stats, err := srv.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.Customers)
	assert.Zero(t, stats.Products)
	assert.Zero(t, stats.Orders)
	assert.Zero(t, stats.Revenue)
}

func TestAdminStats(t *testing.T) {
	store := testutil.NewStore()
	store.Users = []*entity.User{{Email: "a@bistro.test"}, {Email: "b@bistro.test"}}
	store.Menu = []*entity.MenuItem{{Name: "Soup"}}
	store.Payments = []*entity.Payment{{Price: 10.5}, {Price: 4.5}}
	srv := NewStatsService(store.Repository(), testLogger())

	stats, err := srv.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Customers)
	assert.Equal(t, int64(1), stats.Products)
	assert.Equal(t, int64(2), stats.Orders)
	assert.Equal(t, 15.0, stats.Revenue)
}

func TestAdminStats_StoreError(t *testing.T) {
	store := testutil.NewStore()
	store.Err = errors.New("timeout")
	srv := NewStatsService(store.Repository(), testLogger())

	stats, err := srv.AdminStats(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestOrderStats(t *testing.T) {
	store := testutil.NewStore()
	salad := &entity.MenuItem{ID: primitive.NewObjectID(), Category: "salad", Price: 6}
	soup := &entity.MenuItem{ID: primitive.NewObjectID(), Category: "soup", Price: 4}
	store.Menu = []*entity.MenuItem{salad, soup}
	store.Payments = []*entity.Payment{
		{MenuItemIDs: []primitive.ObjectID{salad.ID, salad.ID}},
		{MenuItemIDs: []primitive.ObjectID{soup.ID, primitive.NewObjectID()}},
	}
	srv := NewStatsService(store.Repository(), testLogger())

	stats, err := srv.OrderStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, entity.CategoryStats{Category: "salad", Quantity: 2, Revenue: 12}, *stats[0])
	assert.Equal(t, entity.CategoryStats{Category: "soup", Quantity: 1, Revenue: 4}, *stats[1])
}
