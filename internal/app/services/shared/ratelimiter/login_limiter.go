package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LoginLimiter enforces a fixed window counter on credential attempts.
// The counter lives in Redis with a TTL one second past the window so
// stale windows expire on their own.
type LoginLimiter struct {
	redis     contracts.RedisRepository
	log       *zap.Logger
	maxQuota  int
	windowSec int
}

func NewLoginLimiter(redis contracts.RedisRepository, log *zap.Logger, maxAttempts, windowMinutes int) contracts.LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if windowMinutes <= 0 {
		windowMinutes = 15
	}
	return &LoginLimiter{
		redis:     redis,
		log:       log,
		maxQuota:  maxAttempts,
		windowSec: windowMinutes * 60,
	}
}

func (l *LoginLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return false, nil
	}

	now := time.Now().UTC()
	windowID := now.Unix() / int64(l.windowSec)
	key := fmt.Sprintf("%s:%s:%d", constvars.LoginLimiterGroupName, identity, windowID)

	count, err := l.redis.Increment(ctx, key)
	if err != nil {
		l.log.Error("LoginLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return false, err
	}
	if count == 1 {
		ttl := time.Duration(l.windowSec)*time.Second + time.Second
		if err := l.redis.Expire(ctx, key, ttl); err != nil {
			l.log.Error("LoginLimiter.Allow expire failed",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return count <= int64(l.maxQuota), nil
}
