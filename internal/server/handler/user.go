package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"feedback_service/internal/domain"
)

type UserService interface {
	SetActive(ctx context.Context, actor domain.Actor, id uuid.UUID, active bool) (*domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Patch("/users/{id}/active", h.SetActive)
}

func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
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

	var req setActiveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	if req.Active == nil {
		writeError(r.Context(), w, fmt.Errorf("%w: active is required", ErrBadRequest))
		return
	}

	user, err := h.svc.SetActive(r.Context(), actor, id, *req.Active)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}
