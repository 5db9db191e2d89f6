package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxSubjectLength  = 120
	MaxSemesterLength = 20
	MaxReasonLength   = 180
)

type Feedback struct {
	ID          uuid.UUID
	SubmitterID uuid.UUID
	TargetID    uuid.UUID
	Subject     string
	Semester    string
	Reason      string
	Body        string
	Sentiment   Sentiment
	Status      FeedbackStatus
	AdminNote   *string
	CreatedAt   time.Time
	EditedAt    time.Time
}

// FeedbackContent is the submitter-controlled part of a feedback item.
type FeedbackContent struct {
	Subject  string
	Semester string
	Reason   string
	Body     string
}

func (c FeedbackContent) Normalize() FeedbackContent {
	return FeedbackContent{
		Subject:  strings.TrimSpace(c.Subject),
		Semester: strings.TrimSpace(c.Semester),
		Reason:   strings.TrimSpace(c.Reason),
		Body:     strings.TrimSpace(c.Body),
	}
}

func (c FeedbackContent) Validate() error {
	if strings.TrimSpace(c.Body) == "" {
		return fmt.Errorf("%w: body is required", ErrValidation)
	}
	if utf8.RuneCountInString(c.Subject) > MaxSubjectLength {
		return fmt.Errorf("%w: subject exceeds %d characters", ErrValidation, MaxSubjectLength)
	}
	if utf8.RuneCountInString(c.Semester) > MaxSemesterLength {
		return fmt.Errorf("%w: semester exceeds %d characters", ErrValidation, MaxSemesterLength)
	}
	if utf8.RuneCountInString(c.Reason) > MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrValidation, MaxReasonLength)
	}
	return nil
}
