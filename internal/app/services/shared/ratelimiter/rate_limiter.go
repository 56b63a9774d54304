package ratelimiter

import (
	"context"
	"fmt"
	"medconnect-service/internal/app/contracts"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter kept in Redis, keyed by group and resource.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

type ApplyResourceLimiterInput struct {
	ResourceName     string
	LimiterGroupName string
	Window           time.Duration
	MaxQuota         int
	Now              time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed    bool
	RetryAfter time.Duration
}

// ApplyResourceLimiter counts one hit and reports whether it fits the window quota.
// A non-positive quota disables the limit.
func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}

	window := in.Window
	if window <= 0 {
		window = time.Minute
	}
	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToLower(strings.TrimSpace(in.LimiterGroupName))
	if resource == "" || group == "" {
		return nil, fmt.Errorf("resource limiter needs both a group and a resource name")
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	windowStart := now.Truncate(window)
	key := fmt.Sprintf("ratelimit:%s:%s:%d", group, resource, windowStart.Unix())

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, err
	}

	if count > in.MaxQuota {
		return &ApplyResourceLimiterOutput{
			Allowed:    false,
			RetryAfter: windowStart.Add(window).Sub(now),
		}, nil
	}
	return &ApplyResourceLimiterOutput{Allowed: true}, nil
}
