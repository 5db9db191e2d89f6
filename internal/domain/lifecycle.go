package domain

import (
	"fmt"
	"strings"
	"time"
)

// SeedStatus returns the status a freshly submitted or edited item starts in.
func SeedStatus(sentiment Sentiment) FeedbackStatus {
	if sentiment == SentimentPositive {
		return FeedbackStatusApproved
	}
	return FeedbackStatusUnderReview
}

func ParseModerationAction(raw string) (ModerationAction, error) {
	action := ModerationAction(strings.ToLower(strings.TrimSpace(raw)))
	if !action.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, raw)
	}
	return action, nil
}

func (a ModerationAction) TargetStatus() FeedbackStatus {
	switch a {
	case ModerationActionApprove:
		return FeedbackStatusApproved
	case ModerationActionReject:
		return FeedbackStatusRejected
	case ModerationActionRequestEdit:
		return FeedbackStatusRequestEdit
	default:
		return ""
	}
}

// Reseed replaces the content and resets moderation state. Any earlier
// moderation outcome and admin note are discarded.
func (f *Feedback) Reseed(content FeedbackContent, sentiment Sentiment, at time.Time) {
	f.Subject = content.Subject
	f.Semester = content.Semester
	f.Reason = content.Reason
	f.Body = content.Body
	f.Sentiment = sentiment
	f.Status = SeedStatus(sentiment)
	f.AdminNote = nil
	f.EditedAt = at
}

// ApplyModeration moves the item to the action's target status regardless of
// the current one. A blank note clears the admin note.
func (f *Feedback) ApplyModeration(action ModerationAction, note *string, at time.Time) error {
	if !action.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	f.Status = action.TargetStatus()
	f.AdminNote = NormalizeNote(note)
	f.EditedAt = at
	return nil
}

func NormalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
