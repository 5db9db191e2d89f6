package domain

import "strings"

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleFaculty UserRole = "faculty"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleFaculty, UserRoleAdmin:
		return true
	default:
		return false
	}
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	default:
		return false
	}
}

// ToSentiment accepts any casing and returns false for unknown labels.
func ToSentiment(raw string) (Sentiment, bool) {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

type FeedbackStatus string

const (
	FeedbackStatusUnderReview FeedbackStatus = "under_review"
	FeedbackStatusApproved    FeedbackStatus = "approved"
	FeedbackStatusRejected    FeedbackStatus = "rejected"
	FeedbackStatusRequestEdit FeedbackStatus = "request_edit"
)

func (s FeedbackStatus) IsValid() bool {
	switch s {
	case FeedbackStatusUnderReview, FeedbackStatusApproved,
		FeedbackStatusRejected, FeedbackStatusRequestEdit:
		return true
	default:
		return false
	}
}

func ToFeedbackStatus(raw string) (FeedbackStatus, bool) {
	s := FeedbackStatus(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

type ModerationAction string

const (
	ModerationActionApprove     ModerationAction = "approve"
	ModerationActionReject      ModerationAction = "reject"
	ModerationActionRequestEdit ModerationAction = "request_edit"
)

func (a ModerationAction) IsValid() bool {
	switch a {
	case ModerationActionApprove, ModerationActionReject, ModerationActionRequestEdit:
		return true
	default:
		return false
	}
}
