package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/czytanka/backend/internal/config"
	"github.com/czytanka/backend/internal/domain"
)

// WordTranslation is the contextual translation of a single word or phrase.
type WordTranslation struct {
	Translation  string
	BaseForm     string
	PartOfSpeech string
	Note         string
}

// Generator produces reading texts and contextual word translations.
type Generator struct {
	llm Completer
	cfg config.LLMConfig
	log *slog.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(llm Completer, cfg config.LLMConfig, log *slog.Logger) *Generator {
	return &Generator{
		llm: llm,
		cfg: cfg,
		log: log.With("component", "generator"),
	}
}

// GenerateText produces a short A2-B1 Polish text on the given topic.
func (g *Generator) GenerateText(ctx context.Context, topic string) (string, error) {
	text, err := g.llm.Complete(ctx, buildGeneratePrompt(topic), g.cfg.GenerateMaxSize)
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("generate text: empty response: %w", domain.ErrExtractionFormat)
	}

	g.log.InfoContext(ctx, "text generated", slog.Int("length", len(text)))
	return text, nil
}

// translatePayload mirrors the JSON shape the translate prompt requests.
type translatePayload struct {
	Translation  string `json:"translation"`
	BaseForm     string `json:"baseForm"`
	PartOfSpeech string `json:"partOfSpeech"`
	Note         string `json:"note"`
}

// Translate translates one Polish word or phrase into Russian, using the
// surrounding text as disambiguation context. When the response is not the
// requested JSON, the raw text is taken as the translation and the word
// itself as the base form, since a degraded answer beats a failed lookup here.
func (g *Generator) Translate(ctx context.Context, word, surrounding string) (*WordTranslation, error) {
	raw, err := g.llm.Complete(ctx, buildTranslatePrompt(word, surrounding), g.cfg.TranslateMaxSize)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	obj, jsonErr := extractJSONObject(raw)
	if jsonErr == nil {
		var payload translatePayload
		if decodeStrict(obj, &payload) == nil && payload.Translation != "" {
			return &WordTranslation{
				Translation:  payload.Translation,
				BaseForm:     payload.BaseForm,
				PartOfSpeech: payload.PartOfSpeech,
				Note:         payload.Note,
			}, nil
		}
	}

	g.log.WarnContext(ctx, "translate response not parseable, using raw text",
		slog.String("word", word),
	)
	return &WordTranslation{
		Translation: strings.TrimSpace(raw),
		BaseForm:    word,
	}, nil
}
