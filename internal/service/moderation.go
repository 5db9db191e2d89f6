package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"feedback_service/internal/domain"
	"feedback_service/pkg/logger"
)

const (
	DefaultRecentLimit = 30
	MaxRecentLimit     = 200
)

type ModerationResult struct {
	Feedback *domain.Feedback
	Entry    *domain.ModerationEntry
}

type ModerationService struct {
	store    FeedbackStore
	ledger   ModerationStore
	users    IdentityLookup
	events   EventPublisher
	recorder Recorder
	clock    clockwork.Clock
	log      *logger.Logger
}

func NewModerationService(
	store FeedbackStore,
	ledger ModerationStore,
	users IdentityLookup,
	events EventPublisher,
	recorder Recorder,
	clock clockwork.Clock,
	log *logger.Logger,
) *ModerationService {
	return &ModerationService{
		store:    store,
		ledger:   ledger,
		users:    users,
		events:   events,
		recorder: orNopRecorder(recorder),
		clock:    clock,
		log:      log,
	}
}

// Moderate applies an admin decision. The status change and its ledger entry
// are committed together; an unknown action changes nothing.
func (s *ModerationService) Moderate(
	ctx context.Context,
	actor domain.Actor,
	feedbackID uuid.UUID,
	rawAction string,
	note *string,
) (*ModerationResult, error) {
	if !actor.Is(domain.UserRoleAdmin) {
		return nil, ErrPermissionDenied
	}

	action, err := domain.ParseModerationAction(rawAction)
	if err != nil {
		return nil, err
	}

	if err := requireActiveUser(ctx, s.users, actor.ID, domain.UserRoleAdmin); err != nil {
		if errors.Is(err, ErrInactiveUser) {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}

	entryID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	tx, err := s.store.NewModerationTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func(tx ModerationTx, ctx context.Context) {
		if err := tx.Rollback(ctx); err != nil {
			s.log.ErrorContext(ctx, "Failed to Rollback", zap.Error(err))
		}
	}(tx, ctx)

	feedback, err := tx.GetForUpdate(ctx, feedbackID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := feedback.ApplyModeration(action, note, now); err != nil {
		return nil, err
	}
	if err := tx.UpdateModeration(ctx, feedback); err != nil {
		return nil, err
	}

	entry := &domain.ModerationEntry{
		ID:          entryID,
		FeedbackID:  feedback.ID,
		ModeratorID: actor.ID,
		Action:      action,
		Note:        feedback.AdminNote,
		CreatedAt:   now,
	}
	if err := tx.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.recorder.ObserveModeration(action)

	event := domain.NewFeedbackEvent(domain.FeedbackEventModerated, feedback, now)
	event.Action = action
	event.ModeratorID = &entry.ModeratorID
	if err := s.events.PublishFeedbackEvent(ctx, event); err != nil {
		s.log.ErrorContext(ctx, "Failed to publish moderation event",
			zap.String("feedback_id", feedback.ID.String()),
			zap.Error(err),
		)
	}

	return &ModerationResult{Feedback: feedback, Entry: entry}, nil
}

// History returns the ledger of one item, oldest first. Only the submitter
// and admins may read it.
func (s *ModerationService) History(ctx context.Context, actor domain.Actor, feedbackID uuid.UUID) ([]*domain.ModerationEntry, error) {
	feedback, err := s.store.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if !actor.Is(domain.UserRoleAdmin) && !(actor.Is(domain.UserRoleStudent) && feedback.SubmitterID == actor.ID) {
		return nil, ErrPermissionDenied
	}
	return s.ledger.History(ctx, feedbackID)
}

func (s *ModerationService) Recent(ctx context.Context, actor domain.Actor, limit int) ([]*domain.ModerationEntry, error) {
	if !actor.Is(domain.UserRoleAdmin) {
		return nil, ErrPermissionDenied
	}
	return s.ledger.Recent(ctx, clampLimit(limit))
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	default:
		return limit
	}
}
