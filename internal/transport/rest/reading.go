package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/czytanka/backend/internal/llm"
	"github.com/czytanka/backend/internal/tokenizer"
)

type readingService interface {
	GenerateText(ctx context.Context, topic string) (string, error)
	TranslateWord(ctx context.Context, word, sentence string) (*llm.WordTranslation, error)
	Tokenize(text string) []tokenizer.Segment
}

// ReadingHandler serves the reading view endpoints: text generation,
// tap-to-translate, and tokenization.
type ReadingHandler struct {
	reading readingService
	log     *slog.Logger
}

func NewReadingHandler(log *slog.Logger, reading readingService) *ReadingHandler {
	return &ReadingHandler{reading: reading, log: log}
}

type generateRequest struct {
	Topic string `json:"topic"`
}

// GenerateResponse carries one generated practice text.
type GenerateResponse struct {
	Text string `json:"text"`
}

// Generate handles POST /api/generate.
func (h *ReadingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	text, err := h.reading.GenerateText(r.Context(), req.Topic)
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, GenerateResponse{Text: text})
}

type translateRequest struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

// TranslateResponse is the JSON shape of one word translation.
type TranslateResponse struct {
	Translation  string `json:"translation"`
	BaseForm     string `json:"baseForm,omitempty"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Note         string `json:"note,omitempty"`
}

// Translate handles POST /api/translate.
func (h *ReadingHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tr, err := h.reading.TranslateWord(r.Context(), req.Word, req.Context)
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TranslateResponse{
		Translation:  tr.Translation,
		BaseForm:     tr.BaseForm,
		PartOfSpeech: tr.PartOfSpeech,
		Note:         tr.Note,
	})
}

type tokenizeRequest struct {
	Text string `json:"text"`
}

// SegmentPayload is the JSON shape of one tokenized segment.
type SegmentPayload struct {
	Text     string `json:"text"`
	Leading  string `json:"leading,omitempty"`
	Word     string `json:"word,omitempty"`
	Trailing string `json:"trailing,omitempty"`
	IsWord   bool   `json:"isWord"`
}

// Tokenize handles POST /api/tokenize.
func (h *ReadingHandler) Tokenize(w http.ResponseWriter, r *http.Request) {
	var req tokenizeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	segments := h.reading.Tokenize(req.Text)
	out := make([]SegmentPayload, len(segments))
	for i, s := range segments {
		out[i] = SegmentPayload{
			Text:     s.Text,
			Leading:  s.Leading,
			Word:     s.Word,
			Trailing: s.Trailing,
			IsWord:   s.IsWord(),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"segments": out})
}
