package locker

import (
	"context"
	"testing"
	"time"

	"medconnect-service/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	locker := NewLockService(redis.NewRedisRepository(client), zap.NewNop())
	ctx := context.Background()

	acquired, token, err := locker.TryLock(ctx, "leader", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)
	require.NotEmpty(t, token)

	t.Run("second caller is refused", func(t *testing.T) {
		again, otherToken, err := locker.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		assert.False(t, again)
		assert.Empty(t, otherToken)
	})

	t.Run("refresh extends ttl for owner only", func(t *testing.T) {
		mr.FastForward(30 * time.Second)
		require.NoError(t, locker.Refresh(ctx, "leader", token, time.Minute))
		assert.Equal(t, time.Minute, mr.TTL("leader"))

		assert.Error(t, locker.Refresh(ctx, "leader", "not-the-owner", time.Minute))
	})

	t.Run("unlock requires ownership", func(t *testing.T) {
		assert.Error(t, locker.Unlock(ctx, "leader", "not-the-owner"))
		assert.True(t, mr.Exists("leader"))

		require.NoError(t, locker.Unlock(ctx, "leader", token))
		assert.False(t, mr.Exists("leader"))
	})

	t.Run("unlocking a missing lock is a no-op", func(t *testing.T) {
		assert.NoError(t, locker.Unlock(ctx, "leader", token))
	})

	t.Run("refresh of an expired lock fails", func(t *testing.T) {
		ok, shortToken, err := locker.TryLock(ctx, "short", time.Second)
		require.NoError(t, err)
		require.True(t, ok)
		mr.FastForward(2 * time.Second)
		assert.Error(t, locker.Refresh(ctx, "short", shortToken, time.Minute))
	})
}
