package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
	"github.com/czytanka/backend/internal/service/cards"
)

type cardsService interface {
	ListCards(ctx context.Context) ([]*domain.Card, error)
	AddCard(ctx context.Context, input cards.AddCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	RecordReview(ctx context.Context, id uuid.UUID, correct bool) (*domain.Card, error)
	ReviewQueue(ctx context.Context) ([]*domain.Card, error)
}

// CardsHandler serves the flashcard CRUD and review endpoints.
type CardsHandler struct {
	cards cardsService
	log   *slog.Logger
}

func NewCardsHandler(log *slog.Logger, cards cardsService) *CardsHandler {
	return &CardsHandler{cards: cards, log: log}
}

// CardResponse is the JSON shape of one flashcard.
type CardResponse struct {
	ID        string            `json:"id"`
	Polish    string            `json:"polish"`
	Russian   string            `json:"russian"`
	BaseForm  string            `json:"baseForm"`
	Example   string            `json:"example,omitempty"`
	Stats     CardStatsResponse `json:"stats"`
	CreatedAt time.Time         `json:"createdAt"`
}

// CardStatsResponse is the JSON shape of per-card review counters.
type CardStatsResponse struct {
	Correct    int        `json:"correct"`
	Incorrect  int        `json:"incorrect"`
	LastReview *time.Time `json:"lastReview,omitempty"`
}

func toCardResponse(c *domain.Card) CardResponse {
	return CardResponse{
		ID:       c.ID.String(),
		Polish:   c.Polish,
		Russian:  c.Russian,
		BaseForm: c.BaseForm,
		Example:  c.Example,
		Stats: CardStatsResponse{
			Correct:    c.Stats.Correct,
			Incorrect:  c.Stats.Incorrect,
			LastReview: c.Stats.LastReview,
		},
		CreatedAt: c.CreatedAt,
	}
}

func toCardResponses(cs []*domain.Card) []CardResponse {
	out := make([]CardResponse, len(cs))
	for i, c := range cs {
		out[i] = toCardResponse(c)
	}
	return out
}

// List handles GET /api/flashcards.
func (h *CardsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.cards.ListCards(r.Context())
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": toCardResponses(list)})
}

type addCardRequest struct {
	Polish   string `json:"polish"`
	Russian  string `json:"russian"`
	BaseForm string `json:"baseForm"`
	Example  string `json:"example"`
}

// Add handles POST /api/flashcards.
func (h *CardsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	card, err := h.cards.AddCard(r.Context(), cards.AddCardInput{
		Polish:   req.Polish,
		Russian:  req.Russian,
		BaseForm: req.BaseForm,
		Example:  req.Example,
	})
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardResponse(card))
}

// Delete handles DELETE /api/flashcards/{id}.
func (h *CardsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	if err := h.cards.DeleteCard(r.Context(), id); err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type recordReviewRequest struct {
	Correct *bool `json:"correct"`
}

// RecordReview handles PATCH /api/flashcards/{id}/stats.
func (h *CardsHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	var req recordReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Correct == nil {
		writeError(w, domain.NewValidationError("correct", "is required"))
		return
	}

	card, err := h.cards.RecordReview(r.Context(), id, *req.Correct)
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// ReviewQueue handles GET /api/flashcards/review.
func (h *CardsHandler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.cards.ReviewQueue(r.Context())
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": toCardResponses(queue)})
}
