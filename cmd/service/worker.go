package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"feedback_service/internal/domain"
	"feedback_service/internal/service"
	"feedback_service/pkg/logger"
)

type BacklogPublisher interface {
	PublishBacklog(ctx context.Context, digest domain.BacklogDigest) error
}

type BacklogGauge interface {
	SetReviewBacklog(n int)
}

// ReviewBacklogWorker periodically reports feedback that has waited for
// moderation longer than age.
type ReviewBacklogWorker struct {
	store       service.FeedbackStore
	publisher   BacklogPublisher
	gauge       BacklogGauge
	logger      *logger.Logger
	clock       clockwork.Clock
	interval    time.Duration
	age         time.Duration
	digestLimit int
}

func NewReviewBacklogWorker(
	store service.FeedbackStore,
	publisher BacklogPublisher,
	gauge BacklogGauge,
	logger *logger.Logger,
	clock clockwork.Clock,
	interval, age time.Duration,
	digestLimit int,
) *ReviewBacklogWorker {
	return &ReviewBacklogWorker{
		store:       store,
		publisher:   publisher,
		gauge:       gauge,
		logger:      logger,
		clock:       clock,
		interval:    interval,
		age:         age,
		digestLimit: digestLimit,
	}
}

func (w *ReviewBacklogWorker) Start(ctx context.Context) {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Review backlog worker stopped")
			return
		case <-ticker.Chan():
			w.processBacklog(ctx)
		}
	}
}

func (w *ReviewBacklogWorker) processBacklog(ctx context.Context) {
	now := w.clock.Now()
	olderThan := now.Add(-w.age)

	items, err := w.store.List(ctx, domain.FeedbackFilter{
		Statuses:      []domain.FeedbackStatus{domain.FeedbackStatusUnderReview},
		CreatedBefore: olderThan,
	})
	if err != nil {
		w.logger.Errorf("Failed to list review backlog: %v", err)
		return
	}

	if w.gauge != nil {
		w.gauge.SetReviewBacklog(len(items))
	}
	if len(items) == 0 {
		return
	}

	digest := domain.BacklogDigest{
		Count:       len(items),
		OldestIDs:   oldestIDs(items, w.digestLimit),
		OlderThan:   olderThan,
		GeneratedAt: now,
	}
	if err := w.publisher.PublishBacklog(ctx, digest); err != nil {
		w.logger.Error("Failed to publish review backlog", zap.Int("count", digest.Count), zap.Error(err))
		return
	}

	w.logger.Infof("Published review backlog of %d items", digest.Count)
}

// oldestIDs expects items newest first and returns up to limit ids, oldest first.
func oldestIDs(items []*domain.Feedback, limit int) []uuid.UUID {
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	ids := make([]uuid.UUID, 0, limit)
	for i := len(items) - 1; i >= 0 && len(ids) < limit; i-- {
		ids = append(ids, items[i].ID)
	}
	return ids
}
