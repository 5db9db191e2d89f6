package identity

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"feedback_service/pkg/logger"
)

// UserKeyPrefix namespaces cached user records in a shared Redis.
const UserKeyPrefix = "feedback:user:"

// RedisCache stores opaque values under prefix+key. Redis failures are logged
// and reported as misses so a lookup falls through to the store.
type RedisCache struct {
	rdb    redis.Cmdable
	prefix string
	log    *logger.Logger
}

func NewRedisCache(rdb redis.Cmdable, prefix string, log *logger.Logger) *RedisCache {
	return &RedisCache{rdb: rdb, prefix: prefix, log: log}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false
	case err != nil:
		r.log.ErrorContext(ctx, "Redis get failed", zap.String("key", r.prefix+key), zap.Error(err))
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.rdb.Set(ctx, r.prefix+key, data, ttl).Err(); err != nil {
		r.log.ErrorContext(ctx, "Redis set failed", zap.String("key", r.prefix+key), zap.Error(err))
	}
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		r.log.ErrorContext(ctx, "Redis delete failed", zap.String("key", r.prefix+key), zap.Error(err))
	}
}
