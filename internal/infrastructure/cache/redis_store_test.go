//go:build unit
// +build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), &config.CacheSettings{
		Type: config.RedisCacheType,
		Addr: mr.Addr(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisRateLimiter(t *testing.T) {
	ctx := context.Background()
	_, client := setupMiniredis(t)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRedisRateLimiter(client).(*redisRateLimiter)
	limiter.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "magic:a@b.c", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		clock = clock.Add(time.Second)
	}

	ok, err := limiter.Allow(ctx, "magic:a@b.c", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	clock = clock.Add(2 * time.Minute)
	ok, err = limiter.Allow(ctx, "magic:a@b.c", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	mr, client := setupMiniredis(t)

	blacklist := NewRedisTokenBlacklist(client)

	require.NoError(t, blacklist.Revoke(ctx, "jti-1", time.Minute))

	revoked, err := blacklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = blacklist.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = blacklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewStores(t *testing.T) {
	ctx := context.Background()
	log := testutil.SetupTestLogger(t)

	stores, err := NewStores(ctx, &config.CacheSettings{Type: config.MemoryCacheType}, log)
	require.NoError(t, err)
	assert.NotNil(t, stores.RateLimiter)
	assert.NoError(t, stores.Close())

	mr := miniredis.RunT(t)
	stores, err = NewStores(ctx, &config.CacheSettings{Type: config.RedisCacheType, Addr: mr.Addr()}, log)
	require.NoError(t, err)
	assert.NotNil(t, stores.Blacklist)
	assert.NoError(t, stores.Close())

	_, err = NewStores(ctx, &config.CacheSettings{Type: "memcached"}, log)
	assert.Error(t, err)
}
