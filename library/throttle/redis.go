package throttle

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "chandemahtab:comment_rate:"

// RedisLimiter backs the counter with a shared redis instance so the
// limit holds across process restarts and replicas.
type RedisLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

// NewRedisLimiter creates a redis-backed limiter allowing max hits per window.
func NewRedisLimiter(rdb *redis.Client, max int, window time.Duration) (*RedisLimiter, error) {
	if rdb == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if max <= 0 {
		return nil, errors.Errorf("max must be positive, got %d", max)
	}
	if window <= 0 {
		return nil, errors.Errorf("window must be positive, got %s", window)
	}

	return &RedisLimiter{rdb: rdb, max: max, window: window}, nil
}

// Allow implements Limiter. The first hit on a key starts the window
// via EXPIRE NX so later hits never extend it.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := redisKeyPrefix + key

	count, err := l.rdb.Incr(ctx, rkey).Result()
	if err != nil {
		return false, errors.Wrap(err, "incr rate counter")
	}

	if err = l.rdb.ExpireNX(ctx, rkey, l.window).Err(); err != nil {
		return false, errors.Wrap(err, "set rate counter ttl")
	}

	return count <= int64(l.max), nil
}
