package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, &redisRepository{client: client}
}

func TestRedisRepositorySetGet(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "doctors:catalog", []string{"a", "b"}, time.Minute))

	value, err := repo.Get(ctx, "doctors:catalog")
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, value)
	assert.Equal(t, time.Minute, mr.TTL("doctors:catalog"))

	missing, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, missing)

	require.NoError(t, repo.Delete(ctx, "doctors:catalog"))
	assert.False(t, mr.Exists("doctors:catalog"))
}

func TestRedisRepositoryTrySetNX(t *testing.T) {
	_, repo := newTestRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "lock", "token-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock", "token-2", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	value, err := repo.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, `"token-1"`, value)
}

func TestRedisRepositoryIncrementWithTTL(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.IncrementWithTTL(ctx, "counter", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	mr.FastForward(10 * time.Second)
	count, err = repo.IncrementWithTTL(ctx, "counter", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 20*time.Second, mr.TTL("counter"), "ttl must not be reset by later increments")
}

func TestRedisRepositoryExpire(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	ok, err := repo.Expire(ctx, "missing", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "key", 1, time.Second))
	ok, err = repo.Expire(ctx, "key", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Hour, mr.TTL("key"))
}
