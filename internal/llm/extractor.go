package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/czytanka/backend/internal/config"
	"github.com/czytanka/backend/internal/domain"
)

// UnrecognizedNote is a token the extraction could not classify, with the
// collaborator's reason.
type UnrecognizedNote struct {
	Text string
	Note string
}

// NotesExtraction is the result of the messy-notes extraction job.
type NotesExtraction struct {
	Cards        []domain.ProposedCard
	Unrecognized []UnrecognizedNote
	Warnings     []string
}

// Extractor turns raw learner input into proposed cards via the AI
// collaborator. One call per batch, never per word.
type Extractor struct {
	llm Completer
	cfg config.LLMConfig
	log *slog.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(llm Completer, cfg config.LLMConfig, log *slog.Logger) *Extractor {
	return &Extractor{
		llm: llm,
		cfg: cfg,
		log: log.With("component", "extractor"),
	}
}

// batchCardPayload mirrors the JSON shape the batch-translate prompt requests.
type batchCardPayload struct {
	Polish       string `json:"polish"`
	Russian      string `json:"russian"`
	BaseForm     string `json:"baseForm"`
	Example      string `json:"example"`
	OriginalText string `json:"originalText"`
}

// notesPayload mirrors the JSON shape the notes-extraction prompt requests.
type notesPayload struct {
	Cards        []batchCardPayload `json:"cards"`
	Unrecognized []struct {
		Text string `json:"text"`
		Note string `json:"note"`
	} `json:"unrecognized"`
	Warnings []string `json:"warnings"`
}

// BatchTranslate translates a batch of Polish words into proposed cards with
// a single collaborator call. The response must be a JSON array with one
// sound item per word; anything else is domain.ErrExtractionFormat.
func (e *Extractor) BatchTranslate(ctx context.Context, words []string) ([]domain.ProposedCard, error) {
	if len(words) == 0 {
		return nil, nil
	}

	raw, err := e.llm.Complete(ctx, buildBatchTranslatePrompt(words), e.cfg.ExtractMaxSize)
	if err != nil {
		return nil, fmt.Errorf("batch translate: %w", err)
	}

	arr, err := extractJSONArray(raw)
	if err != nil {
		return nil, fmt.Errorf("batch translate: %w", err)
	}

	var payload []batchCardPayload
	if err := decodeStrict(arr, &payload); err != nil {
		return nil, fmt.Errorf("batch translate: %w", err)
	}

	cards, err := e.toProposedCards(payload)
	if err != nil {
		return nil, fmt.Errorf("batch translate: %w", err)
	}

	e.log.InfoContext(ctx, "batch translated",
		slog.Int("words", len(words)),
		slog.Int("cards", len(cards)),
	)
	return cards, nil
}

// ExtractFromNotes runs the messy-notes extraction job: find possibly
// misspelled Polish words in a freeform blob, correct, translate, and flag
// what could not be classified.
func (e *Extractor) ExtractFromNotes(ctx context.Context, notes string) (*NotesExtraction, error) {
	raw, err := e.llm.Complete(ctx, buildNotesExtractPrompt(notes), e.cfg.ExtractMaxSize)
	if err != nil {
		return nil, fmt.Errorf("extract from notes: %w", err)
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("extract from notes: %w", err)
	}

	var payload notesPayload
	if err := decodeStrict(obj, &payload); err != nil {
		return nil, fmt.Errorf("extract from notes: %w", err)
	}

	cards, err := e.toProposedCards(payload.Cards)
	if err != nil {
		return nil, fmt.Errorf("extract from notes: %w", err)
	}

	result := &NotesExtraction{
		Cards:    cards,
		Warnings: payload.Warnings,
	}
	for _, u := range payload.Unrecognized {
		if u.Text == "" {
			return nil, fmt.Errorf("extract from notes: unrecognized item without text: %w", domain.ErrExtractionFormat)
		}
		result.Unrecognized = append(result.Unrecognized, UnrecognizedNote{
			Text: domain.Truncate(u.Text, domain.MaxPolishLen),
			Note: domain.Truncate(u.Note, domain.MaxExampleLen),
		})
	}

	e.log.InfoContext(ctx, "notes extracted",
		slog.Int("cards", len(result.Cards)),
		slog.Int("unrecognized", len(result.Unrecognized)),
		slog.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}

// toProposedCards sanitizes raw payload items into ProposedCards. A card
// without both polish and russian is a shape violation, not a skippable row.
func (e *Extractor) toProposedCards(payload []batchCardPayload) ([]domain.ProposedCard, error) {
	cards := make([]domain.ProposedCard, 0, len(payload))
	for i, p := range payload {
		if p.Polish == "" || p.Russian == "" {
			return nil, fmt.Errorf("card %d missing polish or russian: %w", i, domain.ErrExtractionFormat)
		}
		card := domain.NewProposedCard(p.Polish, p.Russian, p.BaseForm, p.Example)
		if p.OriginalText != "" && p.OriginalText != card.Polish {
			card.OriginalText = domain.Truncate(p.OriginalText, domain.MaxPolishLen)
		}
		cards = append(cards, card)
	}
	return cards, nil
}
