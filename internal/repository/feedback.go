package repository

import (
	"context"
	"errors"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"feedback_service/internal/domain"
	"feedback_service/internal/service"
)

type FeedbackRepository struct {
	db Querier
}

func NewFeedbackRepository(db Querier) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	query := `
INSERT INTO feedback (
	id, submitter_id, target_id,
	subject, semester, reason, body,
	sentiment, status, admin_note,
	created_at, edited_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`
	_, err := r.db.Exec(ctx, query,
		feedback.ID,
		feedback.SubmitterID,
		feedback.TargetID,
		feedback.Subject,
		feedback.Semester,
		feedback.Reason,
		feedback.Body,
		feedback.Sentiment,
		feedback.Status,
		feedback.AdminNote,
		feedback.CreatedAt,
		feedback.EditedAt,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	query := "SELECT" + feedbackColumns + "\nFROM feedback\nWHERE id = $1\n"

	var feedback domain.Feedback
	if err := pgxscan.Get(ctx, r.db, &feedback, query, id); err != nil {
		return nil, handleError(err)
	}
	return &feedback, nil
}

// Update writes submitter-editable content together with the reseeded
// sentiment, status and admin note.
func (r *FeedbackRepository) Update(ctx context.Context, feedback *domain.Feedback) error {
	query := `
UPDATE feedback
SET subject = $1, semester = $2, reason = $3, body = $4,
	sentiment = $5, status = $6, admin_note = $7, edited_at = $8
WHERE id = $9
`
	tag, err := r.db.Exec(ctx, query,
		feedback.Subject,
		feedback.Semester,
		feedback.Reason,
		feedback.Body,
		feedback.Sentiment,
		feedback.Status,
		feedback.AdminNote,
		feedback.EditedAt,
		feedback.ID,
	)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete relies on ON DELETE CASCADE to drop the moderation entries.
func (r *FeedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	query, args := buildListFeedbackQuery(filter)

	var items []*domain.Feedback
	if err := pgxscan.Select(ctx, r.db, &items, query, args...); err != nil {
		return nil, handleError(err)
	}
	return items, nil
}

func (r *FeedbackRepository) NewModerationTx(ctx context.Context) (service.ModerationTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &moderationTx{tx: tx}, nil
}

type moderationTx struct {
	tx pgx.Tx
}

func (m *moderationTx) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	query := "SELECT" + feedbackColumns + "\nFROM feedback\nWHERE id = $1\nFOR UPDATE\n"

	var feedback domain.Feedback
	if err := pgxscan.Get(ctx, m.tx, &feedback, query, id); err != nil {
		return nil, handleError(err)
	}
	return &feedback, nil
}

func (m *moderationTx) UpdateModeration(ctx context.Context, feedback *domain.Feedback) error {
	query := `
UPDATE feedback
SET status = $1, admin_note = $2, edited_at = $3
WHERE id = $4
`
	tag, err := m.tx.Exec(ctx, query, feedback.Status, feedback.AdminNote, feedback.EditedAt, feedback.ID)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *moderationTx) AppendEntry(ctx context.Context, entry *domain.ModerationEntry) error {
	query := `
INSERT INTO moderation_entries (id, feedback_id, moderator_id, action, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := m.tx.Exec(ctx, query,
		entry.ID,
		entry.FeedbackID,
		entry.ModeratorID,
		entry.Action,
		entry.Note,
		entry.CreatedAt,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (m *moderationTx) Commit(ctx context.Context) error {
	return m.tx.Commit(ctx)
}

func (m *moderationTx) Rollback(ctx context.Context) error {
	if err := m.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
