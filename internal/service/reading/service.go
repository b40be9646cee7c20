package reading

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/czytanka/backend/internal/domain"
	"github.com/czytanka/backend/internal/llm"
	"github.com/czytanka/backend/internal/tokenizer"
)

// Input length caps for the reading endpoints.
const (
	MaxTopicLen   = 200
	MaxWordLen    = 200
	MaxContextLen = 2000
)

type generator interface {
	GenerateText(ctx context.Context, topic string) (string, error)
	Translate(ctx context.Context, word, surrounding string) (*llm.WordTranslation, error)
}

// Service backs the reading view: generated practice texts, word-level
// translations, and tokenization of arbitrary Polish text.
type Service struct {
	gen generator
	log *slog.Logger
}

func NewService(log *slog.Logger, gen generator) *Service {
	return &Service{
		gen: gen,
		log: log.With("service", "reading"),
	}
}

// GenerateText produces a short practice text in simple Polish on the given
// topic.
func (s *Service) GenerateText(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", domain.NewValidationError("topic", "is required")
	}
	if utf8.RuneCountInString(topic) > MaxTopicLen {
		return "", domain.NewValidationError("topic", fmt.Sprintf("exceeds %d characters", MaxTopicLen))
	}

	text, err := s.gen.GenerateText(ctx, topic)
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}
	return text, nil
}

// TranslateWord translates a single word, optionally disambiguated by the
// sentence it appeared in.
func (s *Service) TranslateWord(ctx context.Context, word, sentence string) (*llm.WordTranslation, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "is required")
	}
	if utf8.RuneCountInString(word) > MaxWordLen {
		return nil, domain.NewValidationError("word", fmt.Sprintf("exceeds %d characters", MaxWordLen))
	}
	surrounding := domain.Truncate(sentence, MaxContextLen)

	translation, err := s.gen.Translate(ctx, word, surrounding)
	if err != nil {
		return nil, fmt.Errorf("translate word: %w", err)
	}
	return translation, nil
}

// Tokenize splits Polish text into word-bearing and punctuation segments for
// the tap-to-translate reading view.
func (s *Service) Tokenize(text string) []tokenizer.Segment {
	return tokenizer.Tokenize(text)
}
