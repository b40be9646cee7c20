package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
	"github.com/czytanka/backend/internal/service/unrecognized"
)

type unrecognizedService interface {
	List(ctx context.Context, status *domain.UnrecognizedStatus) ([]*domain.UnrecognizedWord, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.UnrecognizedStatus) (*domain.UnrecognizedWord, error)
	Resolve(ctx context.Context, id uuid.UUID) (*unrecognized.ManualSeed, error)
}

// UnrecognizedHandler serves the unrecognized-word inbox endpoints.
type UnrecognizedHandler struct {
	words unrecognizedService
	log   *slog.Logger
}

func NewUnrecognizedHandler(log *slog.Logger, words unrecognizedService) *UnrecognizedHandler {
	return &UnrecognizedHandler{words: words, log: log}
}

// UnrecognizedResponse is the JSON shape of one unrecognized word.
type UnrecognizedResponse struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	SourceContext string    `json:"sourceContext,omitempty"`
	AINote        string    `json:"aiNote,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toUnrecognizedResponse(w *domain.UnrecognizedWord) UnrecognizedResponse {
	return UnrecognizedResponse{
		ID:            w.ID.String(),
		Text:          w.Text,
		SourceContext: w.SourceContext,
		AINote:        w.AINote,
		Status:        w.Status.String(),
		CreatedAt:     w.CreatedAt,
	}
}

// List handles GET /api/unrecognized with an optional ?status= filter.
func (h *UnrecognizedHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter *domain.UnrecognizedStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.UnrecognizedStatus(raw)
		filter = &status
	}

	words, err := h.words.List(r.Context(), filter)
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}

	out := make([]UnrecognizedResponse, len(words))
	for i, word := range words {
		out[i] = toUnrecognizedResponse(word)
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": out})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles PATCH /api/unrecognized/{id}.
func (h *UnrecognizedHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	var req setStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	word, err := h.words.SetStatus(r.Context(), id, domain.UnrecognizedStatus(req.Status))
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUnrecognizedResponse(word))
}

// ResolveResponse carries the prefilled manual-entry seed.
type ResolveResponse struct {
	Polish string `json:"polish"`
}

// Resolve handles POST /api/unrecognized/{id}/resolve.
func (h *UnrecognizedHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	seed, err := h.words.Resolve(r.Context(), id)
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ResolveResponse{Polish: seed.Polish})
}
