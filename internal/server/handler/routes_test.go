package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback_service/internal/analytics"
	"feedback_service/internal/domain"
	"feedback_service/internal/events"
	"feedback_service/internal/repository"
	"feedback_service/internal/sentiment"
	"feedback_service/internal/server/middleware"
	"feedback_service/internal/service"
	"feedback_service/pkg/logger"
)

type testEnv struct {
	router  *chi.Mux
	store   *repository.MemoryStore
	student domain.Actor
	faculty domain.Actor
	admin   domain.Actor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC))
	store := repository.NewMemoryStore()
	log := logger.NewNop()
	publisher := events.NewNoopPublisher()
	classifier := sentiment.Default()

	env := &testEnv{
		store:   store,
		student: domain.Actor{ID: uuid.New(), Role: domain.UserRoleStudent},
		faculty: domain.Actor{ID: uuid.New(), Role: domain.UserRoleFaculty},
		admin:   domain.Actor{ID: uuid.New(), Role: domain.UserRoleAdmin},
	}
	for _, a := range []domain.Actor{env.student, env.faculty, env.admin} {
		require.NoError(t, store.Upsert(ctx, &domain.User{ID: a.ID, Role: a.Role, IsActive: true}))
	}

	feedbackSvc := service.NewFeedbackService(store, store, classifier, publisher, nil, clock, log)
	moderationSvc := service.NewModerationService(store, store, store, publisher, nil, clock, log)
	analyticsSvc := service.NewAnalyticsService(store, store, analytics.NewAggregator(clock), service.AnalyticsConfig{})

	auth := middleware.NewIdentityMiddleware()
	r := chi.NewRouter()
	NewFeedbackHandler(feedbackSvc, nil).RegisterRoutes(r, auth)
	NewModerationHandler(moderationSvc, analyticsSvc).RegisterRoutes(r, auth)
	NewAnalyticsHandler(analyticsSvc).RegisterRoutes(r, auth)
	NewSentimentHandler(classifier).RegisterRoutes(r, auth)
	NewUserHandler(service.NewUserService(store, store, nil, log)).RegisterRoutes(r, auth)
	env.router = r

	return env
}

func (e *testEnv) do(t *testing.T, actor domain.Actor, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if actor.ID != uuid.Nil {
		req.Header.Set(middleware.HeaderUserID, actor.ID.String())
		req.Header.Set(middleware.HeaderUserRole, string(actor.Role))
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (e *testEnv) submit(t *testing.T, body string) FeedbackResponse {
	t.Helper()
	rec := e.do(t, e.student, http.MethodPost, "/feedback", map[string]any{
		"target_id": e.faculty.ID,
		"subject":   "Databases",
		"reason":    "Clarity",
		"body":      body,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[FeedbackResponse](t, rec)
}

// ── feedback ────────────────────────────────────────────────────────

func TestSubmitFeedback(t *testing.T) {
	env := newTestEnv(t)

	fb := env.submit(t, "Excellent teaching, very clear explanations")
	assert.Equal(t, "positive", fb.Sentiment)
	assert.Equal(t, "approved", fb.Status)
	assert.Equal(t, env.student.ID, fb.SubmitterID)
	assert.Nil(t, fb.AdminNote)

	neutral := env.submit(t, "It was okay, nothing special")
	assert.Equal(t, "neutral", neutral.Sentiment)
	assert.Equal(t, "under_review", neutral.Status)
}

func TestSubmitFeedbackErrors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		actor domain.Actor
		body  any
		want  int
	}{
		{"NoIdentity", domain.Actor{}, map[string]any{"target_id": env.faculty.ID, "body": "good"}, http.StatusUnauthorized},
		{"Faculty", env.faculty, map[string]any{"target_id": env.faculty.ID, "body": "good"}, http.StatusForbidden},
		{"EmptyBody", env.student, map[string]any{"target_id": env.faculty.ID, "body": "  "}, http.StatusBadRequest},
		{"UnknownField", env.student, map[string]any{"target_id": env.faculty.ID, "body": "good", "rating": 5}, http.StatusBadRequest},
		{"TargetIsStudent", env.student, map[string]any{"target_id": env.student.ID, "body": "good"}, http.StatusBadRequest},
		{"TargetMissing", env.student, map[string]any{"target_id": uuid.New(), "body": "good"}, http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, tc.actor, http.MethodPost, "/feedback", tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
			assert.Contains(t, decode[map[string]string](t, rec), "error")
		})
	}
}

func TestFeedbackVisibility(t *testing.T) {
	env := newTestEnv(t)
	pending := env.submit(t, "Lectures felt rushed and confusing")

	rec := env.do(t, env.faculty, http.MethodGet, "/feedback/"+pending.ID.String(), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, env.student, http.MethodGet, "/feedback/"+pending.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, env.admin, http.MethodGet, "/feedback/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, env.admin, http.MethodGet, "/feedback/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditAndDeleteFeedback(t *testing.T) {
	env := newTestEnv(t)
	fb := env.submit(t, "Boring lectures")
	path := "/feedback/" + fb.ID.String()

	rec := env.do(t, env.student, http.MethodPut, path, map[string]any{"body": "Actually very helpful", "reason": "Support"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	edited := decode[FeedbackResponse](t, rec)
	assert.Equal(t, "approved", edited.Status)
	assert.Equal(t, "Support", edited.Reason)

	rec = env.do(t, env.student, http.MethodGet, "/feedback", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]FeedbackResponse](t, rec), 1)

	rec = env.do(t, env.admin, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, env.student, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, env.student, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ── moderation ──────────────────────────────────────────────────────

func TestModerateFeedback(t *testing.T) {
	env := newTestEnv(t)
	fb := env.submit(t, "It was okay")
	path := "/moderation/" + fb.ID.String()

	rec := env.do(t, env.admin, http.MethodPost, path, map[string]any{"action": "archive"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, env.student, http.MethodPost, path, map[string]any{"action": "approve"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, env.admin, http.MethodPost, path, map[string]any{"action": "approve", "note": "ok"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[ModerationResponse](t, rec)
	assert.Equal(t, "approved", res.Feedback.Status)
	require.NotNil(t, res.Feedback.AdminNote)
	assert.Equal(t, "ok", *res.Feedback.AdminNote)
	assert.Equal(t, "approve", res.Entry.Action)
	assert.Equal(t, env.admin.ID, res.Entry.ModeratorID)

	rec = env.do(t, env.student, http.MethodGet, "/feedback/"+fb.ID.String()+"/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	history := decode[[]ModerationEntryResponse](t, rec)
	require.Len(t, history, 1)
	assert.Equal(t, res.Entry.ID, history[0].ID)

	rec = env.do(t, env.faculty, http.MethodGet, "/feedback/"+fb.ID.String()+"/history", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, env.admin, http.MethodGet, "/moderation/recent?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]ModerationEntryResponse](t, rec), 1)
}

func TestModerationQueue(t *testing.T) {
	env := newTestEnv(t)
	env.submit(t, "Great course")
	env.submit(t, "Always late and unprepared")
	env.submit(t, "It was fine")

	rec := env.do(t, env.admin, http.MethodGet, "/moderation/queue", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	queue := decode[ModerationQueueResponse](t, rec)
	assert.Equal(t, 2, queue.KPI.Total)
	assert.Len(t, queue.Items, 2)

	rec = env.do(t, env.admin, http.MethodGet, "/moderation/queue?sentiment=negative&q=LATE", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	queue = decode[ModerationQueueResponse](t, rec)
	assert.Equal(t, KPIResponse{Total: 1, Negative: 1}, queue.KPI)

	rec = env.do(t, env.admin, http.MethodGet, "/moderation/queue?sentiment=furious", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── analytics ───────────────────────────────────────────────────────

func TestFacultyDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.submit(t, "Great course")
	env.submit(t, "Helpful and clear")
	env.submit(t, "Boring")

	rec := env.do(t, env.faculty, http.MethodGet, "/analytics/faculty", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dash := decode[FacultyDashboardResponse](t, rec)

	assert.Equal(t, KPIResponse{Total: 2, Positive: 2}, dash.KPI)
	assert.Len(t, dash.Items, 2)
	assert.Equal(t, []ReasonCountResponse{{Reason: "Clarity", Count: 2}}, dash.Reasons)
	assert.Len(t, dash.Trend.Labels, 6)
	assert.Equal(t, "May 2025", dash.Trend.Labels[5])
	assert.Equal(t, 2, dash.Trend.Positive[5])

	rec = env.do(t, env.student, http.MethodGet, "/analytics/faculty", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.submit(t, "Great course")
	pending := env.submit(t, "Boring")
	rec := env.do(t, env.admin, http.MethodPost, "/moderation/"+pending.ID.String(), map[string]any{"action": "reject"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, env.admin, http.MethodGet, "/analytics/admin", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dash := decode[AdminDashboardResponse](t, rec)

	assert.Equal(t, 2, dash.KPI.Total)
	assert.Equal(t, map[string]int{"under_review": 0, "approved": 1, "rejected": 1, "request_edit": 0}, dash.StatusCounts)
	assert.Empty(t, dash.Queue)
	assert.Len(t, dash.Recent, 1)
	assert.Equal(t, []SentimentCountResponse{
		{Label: "Positive", Count: 1},
		{Label: "Neutral", Count: 0},
		{Label: "Negative", Count: 1},
	}, dash.Breakdown)
}

// ── sentiment ───────────────────────────────────────────────────────

func TestClassifyPreview(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, env.faculty, http.MethodPost, "/sentiment/classify", map[string]any{"text": "Not helpful, boring and confusing"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ClassifyResponse{Sentiment: "negative", PositiveHits: 0, NegativeHits: 3}, decode[ClassifyResponse](t, rec))

	rec = env.do(t, env.faculty, http.MethodPost, "/sentiment/classify", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── users ───────────────────────────────────────────────────────────

func TestSetUserActive(t *testing.T) {
	env := newTestEnv(t)
	fb := env.submit(t, "Very helpful and clear")
	path := "/users/" + env.student.ID.String() + "/active"

	rec := env.do(t, env.student, http.MethodPatch, path, map[string]any{"active": false})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, env.admin, http.MethodPatch, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, env.admin, http.MethodPatch, "/users/"+env.admin.ID.String()+"/active", map[string]any{"active": false})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, env.admin, http.MethodPatch, "/users/"+uuid.NewString()+"/active", map[string]any{"active": false})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, env.admin, http.MethodPatch, path, map[string]any{"active": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := decode[UserResponse](t, rec)
	assert.Equal(t, env.student.ID, user.ID)
	assert.Equal(t, "student", user.Role)
	assert.False(t, user.IsActive)

	rec = env.do(t, env.student, http.MethodPut, "/feedback/"+fb.ID.String(), map[string]any{"body": "boring"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = env.do(t, env.student, http.MethodDelete, "/feedback/"+fb.ID.String(), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, env.admin, http.MethodPatch, path, map[string]any{"active": true})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, env.student, http.MethodDelete, "/feedback/"+fb.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
