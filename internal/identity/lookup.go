// Package identity resolves user records for permission checks, caching them
// in Redis and collapsing concurrent lookups for the same user.
package identity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"feedback_service/internal/domain"
	"feedback_service/pkg/logger"
)

const DefaultTTL = 5 * time.Minute

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type Source interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type cachedUser struct {
	ID       uuid.UUID       `json:"id"`
	Role     domain.UserRole `json:"role"`
	IsActive bool            `json:"is_active"`
}

type CachedLookup struct {
	source Source
	cache  Cache
	ttl    time.Duration
	group  singleflight.Group
	log    *logger.Logger
}

func NewCachedLookup(source Source, cache Cache, ttl time.Duration, log *logger.Logger) *CachedLookup {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedLookup{source: source, cache: cache, ttl: ttl, log: log}
}

// buildUserKey is relative; the cache adds its own namespace.
func buildUserKey(id uuid.UUID) string {
	return id.String()
}

// GetUser serves from cache when possible. Misses are not cached, so a user
// created after a failed lookup is found on the next call.
func (l *CachedLookup) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	key := buildUserKey(id)
	if data, ok := l.cache.Get(ctx, key); ok {
		var cu cachedUser
		if err := json.Unmarshal(data, &cu); err == nil {
			return &domain.User{ID: cu.ID, Role: cu.Role, IsActive: cu.IsActive}, nil
		}
		l.log.WarnContext(ctx, "Dropping undecodable cached user", zap.String("key", key))
		l.cache.Delete(ctx, key)
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		user, err := l.source.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(cachedUser{ID: user.ID, Role: user.Role, IsActive: user.IsActive})
		if err == nil {
			l.cache.Set(ctx, key, data, l.ttl)
		}
		return user, nil
	})
	if err != nil {
		return nil, err
	}

	user := *v.(*domain.User)
	return &user, nil
}

func (l *CachedLookup) Invalidate(ctx context.Context, id uuid.UUID) {
	l.cache.Delete(ctx, buildUserKey(id))
}

// Bootstrapper writes users into the backing store and drops their cached
// copies. Used to seed users from configuration at startup.
type Bootstrapper interface {
	Upsert(ctx context.Context, user *domain.User) error
}

func Seed(ctx context.Context, store Bootstrapper, lookup *CachedLookup, users []domain.User) error {
	for i := range users {
		if err := store.Upsert(ctx, &users[i]); err != nil {
			return err
		}
		if lookup != nil {
			lookup.Invalidate(ctx, users[i].ID)
		}
	}
	return nil
}
