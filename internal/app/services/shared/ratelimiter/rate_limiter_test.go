package ratelimiter

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

func TestResourceLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	limiter := NewResourceLimiter(redis.NewRedisRepository(client), zap.NewNop())
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 10, 0, 15, 0, time.UTC)
	input := ApplyResourceLimiterInput{
		ResourceName:     "conversation-1",
		LimiterGroupName: "assistant",
		Window:           time.Minute,
		MaxQuota:         2,
		Now:              now,
	}

	for i := 0; i < 2; i++ {
		out, err := limiter.ApplyResourceLimiter(ctx, input)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	out, err := limiter.ApplyResourceLimiter(ctx, input)
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, 45*time.Second, out.RetryAfter)

	input.Now = now.Add(time.Minute)
	out, err = limiter.ApplyResourceLimiter(ctx, input)
	require.NoError(t, err)
	assert.True(t, out.Allowed, "a new window starts a new count")

	input.ResourceName = "conversation-2"
	input.Now = now
	out, err = limiter.ApplyResourceLimiter(ctx, input)
	require.NoError(t, err)
	assert.True(t, out.Allowed, "resources are counted separately")
}

func TestResourceLimiterDisabled(t *testing.T) {
	limiter := NewResourceLimiter(nil, zap.NewNop())

	out, err := limiter.ApplyResourceLimiter(context.Background(), ApplyResourceLimiterInput{MaxQuota: 0})
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}
