package cache

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStockCache_SetAndGet(t *testing.T) {
	client := getRedisClient(t)
	stockCache := NewStockCache(client)
	ctx := t.Context()

	client.Del(ctx, "stock:101")

	require.NoError(t, stockCache.SetStock(ctx, 101, 12.5))

	quantity, found, err := stockCache.GetStock(ctx, 101)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 12.5, quantity)
}

func TestStockCache_GetMissingKey(t *testing.T) {
	client := getRedisClient(t)
	stockCache := NewStockCache(client)
	ctx := t.Context()

	client.Del(ctx, "stock:102")

	_, found, err := stockCache.GetStock(ctx, 102)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStockCache_DropStock(t *testing.T) {
	client := getRedisClient(t)
	stockCache := NewStockCache(client)
	ctx := t.Context()

	require.NoError(t, stockCache.SetStock(ctx, 103, 7.0))
	require.NoError(t, stockCache.DropStock(ctx, 103))

	_, found, err := stockCache.GetStock(ctx, 103)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDisabled_AlwaysMisses(t *testing.T) {
	t.Parallel()

	disabled := NewDisabled()
	ctx := t.Context()

	require.NoError(t, disabled.SetStock(ctx, 1, 5.0))

	_, found, err := disabled.GetStock(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, disabled.DropStock(ctx, 1))
}
