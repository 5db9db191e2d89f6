package service

import (
	"context"

	"github.com/google/uuid"

	"feedback_service/internal/analytics"
	"feedback_service/internal/domain"
)

type AnalyticsConfig struct {
	TrendMonths int
	TopReasons  int
	RecentLimit int
}

type ReviewQuery struct {
	Search    string
	Sentiment domain.Sentiment
}

type QueueQuery struct {
	Search    string
	Sentiment domain.Sentiment
	TargetID  uuid.UUID
}

type FacultyDashboard struct {
	KPI       domain.KPI
	Items     []*domain.Feedback
	Reasons   []domain.ReasonCount
	Trend     domain.Trend
	Breakdown []domain.SentimentCount
}

type ModerationQueue struct {
	KPI   domain.KPI
	Items []*domain.Feedback
}

type AdminDashboard struct {
	KPI          domain.KPI
	StatusCounts map[domain.FeedbackStatus]int
	Queue        []*domain.Feedback
	Recent       []*domain.ModerationEntry
	Trend        domain.Trend
	Breakdown    []domain.SentimentCount
}

type AnalyticsService struct {
	store      FeedbackStore
	ledger     ModerationStore
	aggregator *analytics.Aggregator
	cfg        AnalyticsConfig
}

func NewAnalyticsService(
	store FeedbackStore,
	ledger ModerationStore,
	aggregator *analytics.Aggregator,
	cfg AnalyticsConfig,
) *AnalyticsService {
	if cfg.TrendMonths <= 0 {
		cfg.TrendMonths = analytics.DefaultTrendMonths
	}
	if cfg.TopReasons <= 0 {
		cfg.TopReasons = analytics.DefaultTopReasons
	}
	cfg.RecentLimit = clampLimit(cfg.RecentLimit)

	return &AnalyticsService{
		store:      store,
		ledger:     ledger,
		aggregator: aggregator,
		cfg:        cfg,
	}
}

// FacultyReviews builds the faculty view over approved feedback addressed to
// the actor. KPI covers every approved item; the listing, reason ranking and
// trend follow the search and sentiment filters.
func (s *AnalyticsService) FacultyReviews(ctx context.Context, actor domain.Actor, q ReviewQuery) (*FacultyDashboard, error) {
	if !actor.Is(domain.UserRoleFaculty) {
		return nil, ErrPermissionDenied
	}

	baseFilter := domain.FeedbackFilter{
		TargetID: actor.ID,
		Statuses: []domain.FeedbackStatus{domain.FeedbackStatusApproved},
	}
	base, err := s.store.List(ctx, baseFilter)
	if err != nil {
		return nil, err
	}

	items := base
	if q.Search != "" || q.Sentiment != "" {
		filter := baseFilter
		filter.Search = q.Search
		if q.Sentiment != "" {
			filter.Sentiments = []domain.Sentiment{q.Sentiment}
		}
		if items, err = s.store.List(ctx, filter); err != nil {
			return nil, err
		}
	}

	kpi := s.aggregator.KPI(base)
	return &FacultyDashboard{
		KPI:       kpi,
		Items:     items,
		Reasons:   s.aggregator.TopReasons(items, s.cfg.TopReasons),
		Trend:     s.aggregator.Trend(items, s.cfg.TrendMonths),
		Breakdown: s.aggregator.SentimentBreakdown(kpi),
	}, nil
}

// ModerationQueue lists feedback awaiting review with KPI over the filtered set.
func (s *AnalyticsService) ModerationQueue(ctx context.Context, actor domain.Actor, q QueueQuery) (*ModerationQueue, error) {
	if !actor.Is(domain.UserRoleAdmin) {
		return nil, ErrPermissionDenied
	}

	filter := domain.FeedbackFilter{
		TargetID: q.TargetID,
		Statuses: []domain.FeedbackStatus{domain.FeedbackStatusUnderReview},
		Search:   q.Search,
	}
	if q.Sentiment != "" {
		filter.Sentiments = []domain.Sentiment{q.Sentiment}
	}

	items, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ModerationQueue{KPI: s.aggregator.KPI(items), Items: items}, nil
}

func (s *AnalyticsService) AdminDashboard(ctx context.Context, actor domain.Actor) (*AdminDashboard, error) {
	if !actor.Is(domain.UserRoleAdmin) {
		return nil, ErrPermissionDenied
	}

	all, err := s.store.List(ctx, domain.FeedbackFilter{})
	if err != nil {
		return nil, err
	}

	recent, err := s.ledger.Recent(ctx, s.cfg.RecentLimit)
	if err != nil {
		return nil, err
	}

	counts := map[domain.FeedbackStatus]int{
		domain.FeedbackStatusUnderReview: 0,
		domain.FeedbackStatusApproved:    0,
		domain.FeedbackStatusRejected:    0,
		domain.FeedbackStatusRequestEdit: 0,
	}
	queue := make([]*domain.Feedback, 0)
	for _, f := range all {
		counts[f.Status]++
		if f.Status == domain.FeedbackStatusUnderReview {
			queue = append(queue, f)
		}
	}

	kpi := s.aggregator.KPI(all)
	return &AdminDashboard{
		KPI:          kpi,
		StatusCounts: counts,
		Queue:        queue,
		Recent:       recent,
		Trend:        s.aggregator.Trend(all, s.cfg.TrendMonths),
		Breakdown:    s.aggregator.SentimentBreakdown(kpi),
	}, nil
}
