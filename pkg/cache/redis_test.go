package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitKey(t *testing.T) {
	assert.Equal(t, "ratelimit:10.0.0.1", rateLimitKey("10.0.0.1"))
}

func TestIsRateLimited(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client, err := NewClient(addr, 2, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, client.Ping(ctx))

	key := "test-" + uuid.NewString()
	for i := 0; i < 2; i++ {
		limited, err := client.IsRateLimited(ctx, key)
		require.NoError(t, err)
		assert.False(t, limited, "hit %d", i+1)
	}

	limited, err := client.IsRateLimited(ctx, key)
	require.NoError(t, err)
	assert.True(t, limited)

	other, err := client.IsRateLimited(ctx, "test-"+uuid.NewString())
	require.NoError(t, err)
	assert.False(t, other)
}
