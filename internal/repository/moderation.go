package repository

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"feedback_service/internal/domain"
)

type ModerationRepository struct {
	db Querier
}

func NewModerationRepository(db Querier) *ModerationRepository {
	return &ModerationRepository{db: db}
}

func (r *ModerationRepository) History(ctx context.Context, feedbackID uuid.UUID) ([]*domain.ModerationEntry, error) {
	query := `
SELECT id, feedback_id, moderator_id, action, note, created_at
FROM moderation_entries
WHERE feedback_id = $1
ORDER BY created_at ASC, id ASC
`
	var entries []*domain.ModerationEntry
	if err := pgxscan.Select(ctx, r.db, &entries, query, feedbackID); err != nil {
		return nil, handleError(err)
	}
	return entries, nil
}

func (r *ModerationRepository) Recent(ctx context.Context, limit int) ([]*domain.ModerationEntry, error) {
	query := `
SELECT id, feedback_id, moderator_id, action, note, created_at
FROM moderation_entries
ORDER BY created_at DESC, id DESC
LIMIT $1
`
	var entries []*domain.ModerationEntry
	if err := pgxscan.Select(ctx, r.db, &entries, query, limit); err != nil {
		return nil, handleError(err)
	}
	return entries, nil
}
