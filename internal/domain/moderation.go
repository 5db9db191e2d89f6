package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModerationEntry is immutable once stored.
type ModerationEntry struct {
	ID          uuid.UUID
	FeedbackID  uuid.UUID
	ModeratorID uuid.UUID
	Action      ModerationAction
	Note        *string
	CreatedAt   time.Time
}
