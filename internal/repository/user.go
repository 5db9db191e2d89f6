package repository

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"feedback_service/internal/domain"
)

// UserRepository reads the local projection of portal users.
type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
SELECT id, role, is_active
FROM users
WHERE id = $1
`
	var user domain.User
	if err := pgxscan.Get(ctx, r.db, &user, query, id); err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) error {
	query := `
INSERT INTO users (id, role, is_active)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role, is_active = EXCLUDED.is_active
`
	if _, err := r.db.Exec(ctx, query, user.ID, user.Role, user.IsActive); err != nil {
		return handleError(err)
	}
	return nil
}
