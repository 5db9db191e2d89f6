package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"feedback_service/internal/domain"
	"feedback_service/internal/service"
)

type FeedbackService interface {
	Submit(ctx context.Context, actor domain.Actor, input service.SubmitInput) (*domain.Feedback, error)
	Edit(ctx context.Context, actor domain.Actor, id uuid.UUID, content domain.FeedbackContent) (*domain.Feedback, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Feedback, error)
	ListOwn(ctx context.Context, actor domain.Actor) ([]*domain.Feedback, error)
}

type FeedbackHandler struct {
	svc          FeedbackService
	writeLimiter func(http.Handler) http.Handler
}

// NewFeedbackHandler wires feedback routes. writeLimiter guards submit and
// edit and may be nil.
func NewFeedbackHandler(svc FeedbackService, writeLimiter func(http.Handler) http.Handler) *FeedbackHandler {
	if writeLimiter == nil {
		writeLimiter = func(next http.Handler) http.Handler { return next }
	}
	return &FeedbackHandler{svc: svc, writeLimiter: writeLimiter}
}

func (h *FeedbackHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/feedback", h.ListOwn)
		r.Get("/feedback/{id}", h.Get)
		r.Delete("/feedback/{id}", h.Delete)

		r.With(h.writeLimiter).Post("/feedback", h.Submit)
		r.With(h.writeLimiter).Put("/feedback/{id}", h.Edit)
	})
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var req feedbackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	feedback, err := h.svc.Submit(r.Context(), actor, service.SubmitInput{
		TargetID: req.TargetID,
		Content:  req.content(),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFeedbackResponse(feedback))
}

func (h *FeedbackHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	items, err := h.svc.ListOwn(r.Context(), actor)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedbackList(items))
}

func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	feedback, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedbackResponse(feedback))
}

func (h *FeedbackHandler) Edit(w http.ResponseWriter, r *http.Request) {
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

	var req feedbackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	feedback, err := h.svc.Edit(r.Context(), actor, id, req.content())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedbackResponse(feedback))
}

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
