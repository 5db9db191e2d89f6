package identity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"feedback_service/internal/domain"
	"feedback_service/pkg/logger"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr:        mr.Addr(),
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return &logger.Logger{ZapLogger: zap.New(core)}, logs
}

// ── RedisCache ───────────────────────────────────────────────────────────────

func TestRedisCache_RoundTripUsesPrefix(t *testing.T) {
	mr, rdb := newTestRedis(t)
	log, logs := observedLogger()
	cache := NewRedisCache(rdb, UserKeyPrefix, log)
	ctx := context.Background()

	cache.Set(ctx, "abc", []byte(`{"role":"admin"}`), time.Minute)

	assert.True(t, mr.Exists(UserKeyPrefix+"abc"))
	assert.False(t, mr.Exists("abc"))
	assert.Equal(t, time.Minute, mr.TTL(UserKeyPrefix+"abc"))

	data, ok := cache.Get(ctx, "abc")
	require.True(t, ok)
	assert.JSONEq(t, `{"role":"admin"}`, string(data))

	cache.Delete(ctx, "abc")
	assert.False(t, mr.Exists(UserKeyPrefix+"abc"))

	_, ok = cache.Get(ctx, "abc")
	assert.False(t, ok)
	assert.Zero(t, logs.Len(), "a plain miss is not an error")
}

func TestRedisCache_UnavailableIsLoggedAsMiss(t *testing.T) {
	mr, rdb := newTestRedis(t)
	log, logs := observedLogger()
	cache := NewRedisCache(rdb, UserKeyPrefix, log)
	ctx := context.Background()

	mr.Close()

	_, ok := cache.Get(ctx, "abc")
	assert.False(t, ok)
	cache.Set(ctx, "abc", []byte("x"), time.Minute)
	cache.Delete(ctx, "abc")

	entries := logs.FilterLevelExact(zap.ErrorLevel).All()
	require.Len(t, entries, 3)
	assert.Equal(t, "Redis get failed", entries[0].Message)
	assert.Equal(t, "Redis set failed", entries[1].Message)
	assert.Equal(t, "Redis delete failed", entries[2].Message)
	assert.Equal(t, UserKeyPrefix+"abc", entries[0].ContextMap()["key"])
}

func TestCachedLookup_OverRedis(t *testing.T) {
	mr, rdb := newTestRedis(t)
	id := uuid.New()
	source := &countingSource{users: map[uuid.UUID]*domain.User{
		id: {ID: id, Role: domain.UserRoleFaculty, IsActive: true},
	}}
	lookup := NewCachedLookup(source, NewRedisCache(rdb, UserKeyPrefix, logger.NewNop()), time.Minute, logger.NewNop())
	ctx := context.Background()

	_, err := lookup.GetUser(ctx, id)
	require.NoError(t, err)
	_, err = lookup.GetUser(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, int32(1), source.calls.Load())
	assert.True(t, mr.Exists(UserKeyPrefix+id.String()))

	lookup.Invalidate(ctx, id)
	assert.False(t, mr.Exists(UserKeyPrefix+id.String()))
}
