package service

//go:generate mockgen -destination=mocks/mocks.go -package=mocks feedback_service/internal/service FeedbackStore,ModerationTx,ModerationStore,IdentityLookup,UserStore,UserCache,EventPublisher

import (
	"context"

	"github.com/google/uuid"

	"feedback_service/internal/domain"
)

type FeedbackStore interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	Update(ctx context.Context, feedback *domain.Feedback) error
	// Delete removes the item together with its moderation entries.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error)
	NewModerationTx(ctx context.Context) (ModerationTx, error)
}

// ModerationTx commits a status change and its ledger entry atomically.
// Rollback after Commit is a no-op.
type ModerationTx interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	UpdateModeration(ctx context.Context, feedback *domain.Feedback) error
	AppendEntry(ctx context.Context, entry *domain.ModerationEntry) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type ModerationStore interface {
	History(ctx context.Context, feedbackID uuid.UUID) ([]*domain.ModerationEntry, error)
	Recent(ctx context.Context, limit int) ([]*domain.ModerationEntry, error)
}

type IdentityLookup interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserStore is the uncached source of user records.
type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
}

type UserCache interface {
	Invalidate(ctx context.Context, id uuid.UUID)
}

type EventPublisher interface {
	PublishFeedbackEvent(ctx context.Context, event domain.FeedbackEvent) error
}

type Classifier interface {
	Classify(text string) domain.Sentiment
}

// Recorder receives domain counters. A nil Recorder is allowed.
type Recorder interface {
	ObserveClassification(sentiment domain.Sentiment)
	ObserveModeration(action domain.ModerationAction)
}
