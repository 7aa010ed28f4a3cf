package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, exp time.Duration) error
}

// LoginLimiter enforces a fixed window quota on credential attempts.
// Callers pass the submitted identity as the key so an attacker cannot
// spread attempts on one account across addresses.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
