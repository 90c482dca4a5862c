package repository

import (
	"testing"

	"bistro-boss/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stageNames(t *testing.T, stages []bson.D) []string {
	t.Helper()
	names := make([]string, 0, len(stages))
	for _, stage := range stages {
		require.Len(t, stage, 1)
		names = append(names, stage[0].Key)
	}
	return names
}

func TestRevenuePipeline(t *testing.T) {
	p := revenuePipeline()

	assert.Equal(t, []string{"$group"}, stageNames(t, p))

	group := p[0][0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "_id", Value: nil}, group[0])
	assert.Equal(t, bson.E{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}}, group[1])
}

func TestOrderStatsPipeline(t *testing.T) {
	p := orderStatsPipeline()

	assert.Equal(t,
		[]string{"$unwind", "$lookup", "$unwind", "$group", "$project", "$sort"},
		stageNames(t, p),
	)

	lookup := p[1][0].Value.(bson.D).Map()
	assert.Equal(t, database.MenuCollection, lookup["from"])
	assert.Equal(t, "menuItemIds", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])
	assert.Equal(t, "menuItemData", lookup["as"])
}

func TestNewestFirst(t *testing.T) {
	opts := newestFirst()

	assert.Equal(t, bson.D{{Key: "_id", Value: -1}}, opts.Sort)
	assert.NotSame(t, opts, newestFirst())
}
