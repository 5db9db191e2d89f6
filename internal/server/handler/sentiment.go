package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedback_service/internal/sentiment"
)

type SentimentHandler struct {
	classifier *sentiment.Classifier
}

func NewSentimentHandler(classifier *sentiment.Classifier) *SentimentHandler {
	if classifier == nil {
		classifier = sentiment.Default()
	}
	return &SentimentHandler{classifier: classifier}
}

func (h *SentimentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Post("/sentiment/classify", h.Classify)
}

// Classify previews the label a body would receive without storing anything.
func (h *SentimentHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toClassifyResponse(h.classifier.Score(req.Text)))
}
