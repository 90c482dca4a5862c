package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"bistro-boss/pkg/database"
	"bistro-boss/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetupTestDB connects to MONGO_TEST_URI and returns a fresh database that is
// dropped when the test ends. The test is skipped when the variable is unset.
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	db, err := database.InitDB(utils.DatabaseConfig{
		URI:     uri,
		Name:    fmt.Sprintf("bistro_test_%s", primitive.NewObjectID().Hex()),
		Timeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Database().Drop(ctx); err != nil {
			t.Logf("drop test database: %v", err)
		}
		db.Close(ctx)
	})

	return db
}

// TestContext returns a context that is cancelled when the test ends or after
// ten seconds.
func TestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}
