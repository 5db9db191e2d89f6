package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedback_service/internal/domain"
	"feedback_service/internal/service"
)

type DashboardService interface {
	FacultyReviews(ctx context.Context, actor domain.Actor, q service.ReviewQuery) (*service.FacultyDashboard, error)
	AdminDashboard(ctx context.Context, actor domain.Actor) (*service.AdminDashboard, error)
}

type AnalyticsHandler struct {
	svc DashboardService
}

func NewAnalyticsHandler(svc DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/analytics/faculty", h.Faculty)
		r.Get("/analytics/admin", h.Admin)
	})
}

func (h *AnalyticsHandler) Faculty(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	sentiment, err := parseSentimentQuery(r, "sentiment")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	dash, err := h.svc.FacultyReviews(r.Context(), actor, service.ReviewQuery{
		Search:    r.URL.Query().Get("q"),
		Sentiment: sentiment,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFacultyDashboardResponse(dash))
}

func (h *AnalyticsHandler) Admin(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	dash, err := h.svc.AdminDashboard(r.Context(), actor)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAdminDashboardResponse(dash))
}
