package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackFilter expresses which items a store should return. Zero values
// mean "no restriction". Results are ordered by created_at, newest first.
type FeedbackFilter struct {
	SubmitterID   uuid.UUID
	TargetID      uuid.UUID
	Statuses      []FeedbackStatus
	Sentiments    []Sentiment
	Search        string
	CreatedBefore time.Time
	Limit         int
}
