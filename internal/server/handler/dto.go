package handler

import (
	"time"

	"github.com/google/uuid"

	"feedback_service/internal/domain"
	"feedback_service/internal/service"
	"feedback_service/internal/sentiment"
)

type feedbackRequest struct {
	TargetID uuid.UUID `json:"target_id"`
	Subject  string    `json:"subject"`
	Semester string    `json:"semester"`
	Reason   string    `json:"reason"`
	Body     string    `json:"body"`
}

func (r feedbackRequest) content() domain.FeedbackContent {
	return domain.FeedbackContent{
		Subject:  r.Subject,
		Semester: r.Semester,
		Reason:   r.Reason,
		Body:     r.Body,
	}
}

type moderateRequest struct {
	Action string  `json:"action"`
	Note   *string `json:"note"`
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

type classifyRequest struct {
	Text string `json:"text"`
}

type FeedbackResponse struct {
	ID          uuid.UUID `json:"id"`
	SubmitterID uuid.UUID `json:"submitter_id"`
	TargetID    uuid.UUID `json:"target_id"`
	Subject     string    `json:"subject"`
	Semester    string    `json:"semester"`
	Reason      string    `json:"reason"`
	Body        string    `json:"body"`
	Sentiment   string    `json:"sentiment"`
	Status      string    `json:"status"`
	AdminNote   *string   `json:"admin_note"`
	CreatedAt   time.Time `json:"created_at"`
	EditedAt    time.Time `json:"edited_at"`
}

func toFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:          f.ID,
		SubmitterID: f.SubmitterID,
		TargetID:    f.TargetID,
		Subject:     f.Subject,
		Semester:    f.Semester,
		Reason:      f.Reason,
		Body:        f.Body,
		Sentiment:   string(f.Sentiment),
		Status:      string(f.Status),
		AdminNote:   f.AdminNote,
		CreatedAt:   f.CreatedAt,
		EditedAt:    f.EditedAt,
	}
}

func toFeedbackList(items []*domain.Feedback) []FeedbackResponse {
	resp := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		resp = append(resp, toFeedbackResponse(f))
	}
	return resp
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Role: string(u.Role), IsActive: u.IsActive}
}

type ModerationEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	FeedbackID  uuid.UUID `json:"feedback_id"`
	ModeratorID uuid.UUID `json:"moderator_id"`
	Action      string    `json:"action"`
	Note        *string   `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEntryResponse(e *domain.ModerationEntry) ModerationEntryResponse {
	return ModerationEntryResponse{
		ID:          e.ID,
		FeedbackID:  e.FeedbackID,
		ModeratorID: e.ModeratorID,
		Action:      string(e.Action),
		Note:        e.Note,
		CreatedAt:   e.CreatedAt,
	}
}

func toEntryList(entries []*domain.ModerationEntry) []ModerationEntryResponse {
	resp := make([]ModerationEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEntryResponse(e))
	}
	return resp
}

type ModerationResponse struct {
	Feedback FeedbackResponse        `json:"feedback"`
	Entry    ModerationEntryResponse `json:"entry"`
}

type KPIResponse struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

func toKPIResponse(k domain.KPI) KPIResponse {
	return KPIResponse{Total: k.Total, Positive: k.Positive, Neutral: k.Neutral, Negative: k.Negative}
}

type TrendResponse struct {
	Labels   []string `json:"labels"`
	Positive []int    `json:"positive"`
	Neutral  []int    `json:"neutral"`
	Negative []int    `json:"negative"`
}

func toTrendResponse(t domain.Trend) TrendResponse {
	return TrendResponse{Labels: t.Labels, Positive: t.Positive, Neutral: t.Neutral, Negative: t.Negative}
}

type ReasonCountResponse struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type SentimentCountResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func toBreakdown(counts []domain.SentimentCount) []SentimentCountResponse {
	resp := make([]SentimentCountResponse, 0, len(counts))
	for _, c := range counts {
		resp = append(resp, SentimentCountResponse{Label: c.Label, Count: c.Count})
	}
	return resp
}

type FacultyDashboardResponse struct {
	KPI       KPIResponse              `json:"kpi"`
	Items     []FeedbackResponse       `json:"items"`
	Reasons   []ReasonCountResponse    `json:"reasons"`
	Trend     TrendResponse            `json:"trend"`
	Breakdown []SentimentCountResponse `json:"breakdown"`
}

func toFacultyDashboardResponse(d *service.FacultyDashboard) FacultyDashboardResponse {
	reasons := make([]ReasonCountResponse, 0, len(d.Reasons))
	for _, r := range d.Reasons {
		reasons = append(reasons, ReasonCountResponse{Reason: r.Reason, Count: r.Count})
	}
	return FacultyDashboardResponse{
		KPI:       toKPIResponse(d.KPI),
		Items:     toFeedbackList(d.Items),
		Reasons:   reasons,
		Trend:     toTrendResponse(d.Trend),
		Breakdown: toBreakdown(d.Breakdown),
	}
}

type ModerationQueueResponse struct {
	KPI   KPIResponse        `json:"kpi"`
	Items []FeedbackResponse `json:"items"`
}

type AdminDashboardResponse struct {
	KPI          KPIResponse               `json:"kpi"`
	StatusCounts map[string]int            `json:"status_counts"`
	Queue        []FeedbackResponse        `json:"queue"`
	Recent       []ModerationEntryResponse `json:"recent"`
	Trend        TrendResponse             `json:"trend"`
	Breakdown    []SentimentCountResponse  `json:"breakdown"`
}

func toAdminDashboardResponse(d *service.AdminDashboard) AdminDashboardResponse {
	counts := make(map[string]int, len(d.StatusCounts))
	for status, n := range d.StatusCounts {
		counts[string(status)] = n
	}
	return AdminDashboardResponse{
		KPI:          toKPIResponse(d.KPI),
		StatusCounts: counts,
		Queue:        toFeedbackList(d.Queue),
		Recent:       toEntryList(d.Recent),
		Trend:        toTrendResponse(d.Trend),
		Breakdown:    toBreakdown(d.Breakdown),
	}
}

type ClassifyResponse struct {
	Sentiment    string `json:"sentiment"`
	PositiveHits int    `json:"positive_hits"`
	NegativeHits int    `json:"negative_hits"`
}

func toClassifyResponse(s sentiment.Score) ClassifyResponse {
	return ClassifyResponse{
		Sentiment:    string(s.Label()),
		PositiveHits: s.Positive,
		NegativeHits: s.Negative,
	}
}
