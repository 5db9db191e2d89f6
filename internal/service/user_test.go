package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback_service/internal/domain"
	"feedback_service/internal/events"
	"feedback_service/internal/repository"
	"feedback_service/internal/sentiment"
	"feedback_service/internal/service"
	"feedback_service/pkg/logger"
)

func (f *fixture) userService() *service.UserService {
	return service.NewUserService(f.userStore, f.users, f.userCache, logger.NewNop())
}

// ── SetActive ───────────────────────────────────────────────────────

func TestSetActive(t *testing.T) {
	t.Run("Deactivate", func(t *testing.T) {
		f := setup(t)
		admin := adminActor()
		target := uuid.New()

		f.expectUser(admin.ID, domain.UserRoleAdmin, true)
		gomock.InOrder(
			f.userStore.EXPECT().GetUser(gomock.Any(), target).
				Return(&domain.User{ID: target, Role: domain.UserRoleStudent, IsActive: true}, nil),
			f.userStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, u *domain.User) error {
					assert.False(t, u.IsActive)
					assert.Equal(t, domain.UserRoleStudent, u.Role)
					return nil
				}),
			f.userCache.EXPECT().Invalidate(gomock.Any(), target),
		)

		user, err := f.userService().SetActive(context.Background(), admin, target, false)
		require.NoError(t, err)
		assert.False(t, user.IsActive)
	})

	t.Run("UnchangedSkipsWrite", func(t *testing.T) {
		f := setup(t)
		admin := adminActor()
		target := uuid.New()

		f.expectUser(admin.ID, domain.UserRoleAdmin, true)
		f.userStore.EXPECT().GetUser(gomock.Any(), target).
			Return(&domain.User{ID: target, Role: domain.UserRoleFaculty, IsActive: true}, nil)
		f.userCache.EXPECT().Invalidate(gomock.Any(), target)

		user, err := f.userService().SetActive(context.Background(), admin, target, true)
		require.NoError(t, err)
		assert.True(t, user.IsActive)
	})

	t.Run("NilCache", func(t *testing.T) {
		f := setup(t)
		admin := adminActor()
		target := uuid.New()

		f.expectUser(admin.ID, domain.UserRoleAdmin, true)
		f.userStore.EXPECT().GetUser(gomock.Any(), target).
			Return(&domain.User{ID: target, Role: domain.UserRoleStudent}, nil)
		f.userStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewUserService(f.userStore, f.users, nil, logger.NewNop())
		user, err := svc.SetActive(context.Background(), admin, target, true)
		require.NoError(t, err)
		assert.True(t, user.IsActive)
	})

	t.Run("SelfDeactivation", func(t *testing.T) {
		f := setup(t)
		admin := adminActor()

		_, err := f.userService().SetActive(context.Background(), admin, admin.ID, false)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("NonAdmin", func(t *testing.T) {
		f := setup(t)
		_, err := f.userService().SetActive(context.Background(), facultyActor(), uuid.New(), false)
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("InactiveAdmin", func(t *testing.T) {
		f := setup(t)
		admin := adminActor()
		f.expectUser(admin.ID, domain.UserRoleAdmin, false)

		_, err := f.userService().SetActive(context.Background(), admin, uuid.New(), false)
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		f := setup(t)
		admin := adminActor()
		target := uuid.New()

		f.expectUser(admin.ID, domain.UserRoleAdmin, true)
		f.userStore.EXPECT().GetUser(gomock.Any(), target).Return(nil, domain.ErrNotFound)

		_, err := f.userService().SetActive(context.Background(), admin, target, false)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpsertFailure", func(t *testing.T) {
		f := setup(t)
		admin := adminActor()
		target := uuid.New()
		boom := errors.New("boom")

		f.expectUser(admin.ID, domain.UserRoleAdmin, true)
		f.userStore.EXPECT().GetUser(gomock.Any(), target).
			Return(&domain.User{ID: target, Role: domain.UserRoleStudent, IsActive: true}, nil)
		f.userStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(boom)

		_, err := f.userService().SetActive(context.Background(), admin, target, false)
		assert.ErrorIs(t, err, boom)
	})
}

func TestSetActive_DeactivatedStudentLosesWriteAccess(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	admin := adminActor()
	student := studentActor()
	faculty := facultyActor()
	for _, a := range []domain.Actor{admin, student, faculty} {
		require.NoError(t, store.Upsert(ctx, &domain.User{ID: a.ID, Role: a.Role, IsActive: true}))
	}

	clock := clockwork.NewFakeClockAt(testNow)
	feedbackSvc := service.NewFeedbackService(store, store, sentiment.Default(), events.NewNoopPublisher(), nil, clock, logger.NewNop())
	userSvc := service.NewUserService(store, store, nil, logger.NewNop())

	fb, err := feedbackSvc.Submit(ctx, student, service.SubmitInput{
		TargetID: faculty.ID,
		Content:  domain.FeedbackContent{Body: "Helpful and clear"},
	})
	require.NoError(t, err)

	_, err = userSvc.SetActive(ctx, admin, student.ID, false)
	require.NoError(t, err)

	_, err = feedbackSvc.Edit(ctx, student, fb.ID, domain.FeedbackContent{Body: "boring"})
	assert.ErrorIs(t, err, service.ErrInactiveUser)
	assert.ErrorIs(t, feedbackSvc.Delete(ctx, student, fb.ID), service.ErrInactiveUser)

	stored, err := store.GetByID(ctx, fb.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStatusApproved, stored.Status)

	_, err = userSvc.SetActive(ctx, admin, student.ID, true)
	require.NoError(t, err)
	assert.NoError(t, feedbackSvc.Delete(ctx, student, fb.ID))
}
