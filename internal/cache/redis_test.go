package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"inventory-sync/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisDeduper_Key(t *testing.T) {
	d := NewRedisDeduper(nil)
	assert.Equal(t, "inventory:notify:owner:7::low_stock", d.key("owner", "7::low_stock"))
}

// Runs only when REDIS_TEST_ADDR points at a disposable server.
func TestRedisDeduper_Acquire(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	client, err := NewRedisClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	d := NewRedisDeduper(client)
	d.prefix = "test:" + uuid.NewString()

	ok, err := d.Acquire(ctx, "owner", "1::low_stock", "low", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Acquire(ctx, "owner", "1::low_stock", "low", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = d.Acquire(ctx, "manager", "1::low_stock", "low", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, d.Release(ctx, "owner", "1::low_stock", time.Minute))
	ok, err = d.Acquire(ctx, "owner", "1::low_stock", "low", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "released slot can be claimed again")
}
