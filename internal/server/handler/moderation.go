package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"feedback_service/internal/domain"
	"feedback_service/internal/service"
)

type ModerationService interface {
	Moderate(ctx context.Context, actor domain.Actor, feedbackID uuid.UUID, rawAction string, note *string) (*service.ModerationResult, error)
	History(ctx context.Context, actor domain.Actor, feedbackID uuid.UUID) ([]*domain.ModerationEntry, error)
	Recent(ctx context.Context, actor domain.Actor, limit int) ([]*domain.ModerationEntry, error)
}

type QueueService interface {
	ModerationQueue(ctx context.Context, actor domain.Actor, q service.QueueQuery) (*service.ModerationQueue, error)
}

type ModerationHandler struct {
	svc   ModerationService
	queue QueueService
}

func NewModerationHandler(svc ModerationService, queue QueueService) *ModerationHandler {
	return &ModerationHandler{svc: svc, queue: queue}
}

func (h *ModerationHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/feedback/{id}/history", h.History)

		r.Get("/moderation/queue", h.Queue)
		r.Get("/moderation/recent", h.Recent)
		r.Post("/moderation/{id}", h.Moderate)
	})
}

func (h *ModerationHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var req moderateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	res, err := h.svc.Moderate(r.Context(), actor, id, req.Action, req.Note)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, ModerationResponse{
		Feedback: toFeedbackResponse(res.Feedback),
		Entry:    toEntryResponse(res.Entry),
	})
}

func (h *ModerationHandler) History(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	entries, err := h.svc.History(r.Context(), actor, id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryList(entries))
}

func (h *ModerationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	limit, err := parseIntQuery(r, "limit")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	entries, err := h.svc.Recent(r.Context(), actor, limit)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryList(entries))
}

func (h *ModerationHandler) Queue(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	q, err := parseQueueQuery(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	queue, err := h.queue.ModerationQueue(r.Context(), actor, q)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, ModerationQueueResponse{
		KPI:   toKPIResponse(queue.KPI),
		Items: toFeedbackList(queue.Items),
	})
}

func parseQueueQuery(r *http.Request) (service.QueueQuery, error) {
	sentiment, err := parseSentimentQuery(r, "sentiment")
	if err != nil {
		return service.QueueQuery{}, err
	}
	target, err := parseUUIDQuery(r, "faculty_id")
	if err != nil {
		return service.QueueQuery{}, err
	}
	return service.QueueQuery{
		Search:    r.URL.Query().Get("q"),
		Sentiment: sentiment,
		TargetID:  target,
	}, nil
}
