package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"feedback_service/internal/domain"
	"feedback_service/pkg/logger"
)

type SubmitInput struct {
	TargetID uuid.UUID
	Content  domain.FeedbackContent
}

type FeedbackService struct {
	store      FeedbackStore
	users      IdentityLookup
	classifier Classifier
	events     EventPublisher
	recorder   Recorder
	clock      clockwork.Clock
	log        *logger.Logger
}

func NewFeedbackService(
	store FeedbackStore,
	users IdentityLookup,
	classifier Classifier,
	events EventPublisher,
	recorder Recorder,
	clock clockwork.Clock,
	log *logger.Logger,
) *FeedbackService {
	return &FeedbackService{
		store:      store,
		users:      users,
		classifier: classifier,
		events:     events,
		recorder:   orNopRecorder(recorder),
		clock:      clock,
		log:        log,
	}
}

// Submit classifies the body and stores a new item seeded from the label.
func (s *FeedbackService) Submit(ctx context.Context, actor domain.Actor, input SubmitInput) (*domain.Feedback, error) {
	if !actor.Is(domain.UserRoleStudent) {
		return nil, ErrPermissionDenied
	}

	content := input.Content.Normalize()
	if err := content.Validate(); err != nil {
		return nil, err
	}
	if input.TargetID == uuid.Nil {
		return nil, fmt.Errorf("%w: target is required", domain.ErrValidation)
	}

	if err := requireActiveUser(ctx, s.users, actor.ID, domain.UserRoleStudent); err != nil {
		return nil, err
	}
	if err := requireActiveUser(ctx, s.users, input.TargetID, domain.UserRoleFaculty); err != nil {
		if errors.Is(err, ErrInactiveUser) || errors.Is(err, ErrPermissionDenied) {
			return nil, fmt.Errorf("%w: target must be an active faculty member", domain.ErrValidation)
		}
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	sentiment := s.classifier.Classify(content.Body)
	s.recorder.ObserveClassification(sentiment)

	now := s.clock.Now()
	feedback := &domain.Feedback{
		ID:          id,
		SubmitterID: actor.ID,
		TargetID:    input.TargetID,
		CreatedAt:   now,
	}
	feedback.Reseed(content, sentiment, now)

	if err := s.store.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewFeedbackEvent(domain.FeedbackEventSubmitted, feedback, now))
	return feedback, nil
}

// Edit replaces the content of the submitter's own item. Status is reseeded
// and the admin note dropped regardless of any earlier moderation.
func (s *FeedbackService) Edit(ctx context.Context, actor domain.Actor, id uuid.UUID, content domain.FeedbackContent) (*domain.Feedback, error) {
	if !actor.Is(domain.UserRoleStudent) {
		return nil, ErrPermissionDenied
	}

	content = content.Normalize()
	if err := content.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveUser(ctx, s.users, actor.ID, domain.UserRoleStudent); err != nil {
		return nil, err
	}

	feedback, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback.SubmitterID != actor.ID {
		return nil, ErrPermissionDenied
	}

	sentiment := s.classifier.Classify(content.Body)
	s.recorder.ObserveClassification(sentiment)

	now := s.clock.Now()
	feedback.Reseed(content, sentiment, now)

	if err := s.store.Update(ctx, feedback); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewFeedbackEvent(domain.FeedbackEventEdited, feedback, now))
	return feedback, nil
}

func (s *FeedbackService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if !actor.Is(domain.UserRoleStudent) {
		return ErrPermissionDenied
	}
	if err := requireActiveUser(ctx, s.users, actor.ID, domain.UserRoleStudent); err != nil {
		return err
	}

	feedback, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if feedback.SubmitterID != actor.ID {
		return ErrPermissionDenied
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, domain.NewFeedbackEvent(domain.FeedbackEventDeleted, feedback, s.clock.Now()))
	return nil
}

func (s *FeedbackService) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Feedback, error) {
	feedback, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(actor, feedback) {
		return nil, ErrPermissionDenied
	}
	return feedback, nil
}

func (s *FeedbackService) ListOwn(ctx context.Context, actor domain.Actor) ([]*domain.Feedback, error) {
	if !actor.Is(domain.UserRoleStudent) {
		return nil, ErrPermissionDenied
	}
	return s.store.List(ctx, domain.FeedbackFilter{SubmitterID: actor.ID})
}

func (s *FeedbackService) publish(ctx context.Context, event domain.FeedbackEvent) {
	if err := s.events.PublishFeedbackEvent(ctx, event); err != nil {
		s.log.ErrorContext(ctx, "Failed to publish feedback event",
			zap.String("type", string(event.Type)),
			zap.String("feedback_id", event.FeedbackID.String()),
			zap.Error(err),
		)
	}
}

// canView lets owners and admins see everything, faculty only approved
// feedback addressed to them.
func canView(actor domain.Actor, feedback *domain.Feedback) bool {
	switch {
	case actor.Is(domain.UserRoleAdmin):
		return true
	case actor.Is(domain.UserRoleStudent):
		return feedback.SubmitterID == actor.ID
	case actor.Is(domain.UserRoleFaculty):
		return feedback.TargetID == actor.ID && feedback.Status == domain.FeedbackStatusApproved
	default:
		return false
	}
}

func requireActiveUser(ctx context.Context, users IdentityLookup, id uuid.UUID, role domain.UserRole) error {
	user, err := users.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return ErrInactiveUser
	}
	if user.Role != role {
		return ErrPermissionDenied
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveClassification(domain.Sentiment)      {}
func (nopRecorder) ObserveModeration(domain.ModerationAction) {}

func orNopRecorder(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
