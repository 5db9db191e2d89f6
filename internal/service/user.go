package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"feedback_service/internal/domain"
	"feedback_service/pkg/logger"
)

type UserService struct {
	store UserStore
	users IdentityLookup
	cache UserCache
	log   *logger.Logger
}

// NewUserService wires account administration. cache may be nil when user
// lookups are not cached.
func NewUserService(store UserStore, users IdentityLookup, cache UserCache, log *logger.Logger) *UserService {
	return &UserService{store: store, users: users, cache: cache, log: log}
}

// SetActive enables or disables an account. Admins cannot deactivate
// themselves. The cached copy is dropped so the change applies on the next
// request instead of after the cache TTL.
func (s *UserService) SetActive(ctx context.Context, actor domain.Actor, id uuid.UUID, active bool) (*domain.User, error) {
	if !actor.Is(domain.UserRoleAdmin) {
		return nil, ErrPermissionDenied
	}
	if id == actor.ID && !active {
		return nil, fmt.Errorf("%w: cannot deactivate your own account", domain.ErrValidation)
	}

	if err := requireActiveUser(ctx, s.users, actor.ID, domain.UserRoleAdmin); err != nil {
		if errors.Is(err, ErrInactiveUser) {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}

	// read from the store, not the cache, so a stale entry is never written back
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.IsActive != active {
		user.IsActive = active
		if err := s.store.Upsert(ctx, user); err != nil {
			return nil, err
		}
		s.log.InfoContext(ctx, "User activation changed",
			zap.String("user_id", id.String()),
			zap.Bool("active", active),
			zap.String("admin_id", actor.ID.String()),
		)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return user, nil
}
