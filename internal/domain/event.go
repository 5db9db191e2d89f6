package domain

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackEventType string

const (
	FeedbackEventSubmitted FeedbackEventType = "feedback.submitted"
	FeedbackEventEdited    FeedbackEventType = "feedback.edited"
	FeedbackEventModerated FeedbackEventType = "feedback.moderated"
	FeedbackEventDeleted   FeedbackEventType = "feedback.deleted"
)

type FeedbackEvent struct {
	Type        FeedbackEventType `json:"type"`
	FeedbackID  uuid.UUID         `json:"feedback_id"`
	SubmitterID uuid.UUID         `json:"submitter_id"`
	TargetID    uuid.UUID         `json:"target_id"`
	Sentiment   Sentiment         `json:"sentiment,omitempty"`
	Status      FeedbackStatus    `json:"status,omitempty"`
	Action      ModerationAction  `json:"action,omitempty"`
	ModeratorID *uuid.UUID        `json:"moderator_id,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

func NewFeedbackEvent(t FeedbackEventType, f *Feedback, at time.Time) FeedbackEvent {
	return FeedbackEvent{
		Type:        t,
		FeedbackID:  f.ID,
		SubmitterID: f.SubmitterID,
		TargetID:    f.TargetID,
		Sentiment:   f.Sentiment,
		Status:      f.Status,
		OccurredAt:  at,
	}
}

// BacklogDigest summarises feedback waiting for moderation longer than
// the configured age.
type BacklogDigest struct {
	Count       int         `json:"count"`
	OldestIDs   []uuid.UUID `json:"oldest_ids"`
	OlderThan   time.Time   `json:"older_than"`
	GeneratedAt time.Time   `json:"generated_at"`
}
