package importer

import (
	"context"
	"log/slog"

	"github.com/czytanka/backend/internal/config"
	"github.com/czytanka/backend/internal/domain"
	"github.com/czytanka/backend/internal/llm"
)

type cardRepo interface {
	FindByNormalized(ctx context.Context, keys []string) ([]*domain.Card, error)
	Insert(ctx context.Context, card *domain.Card) error
}

type unrecognizedRepo interface {
	InsertBatch(ctx context.Context, words []*domain.UnrecognizedWord) error
}

type extractor interface {
	BatchTranslate(ctx context.Context, words []string) ([]domain.ProposedCard, error)
	ExtractFromNotes(ctx context.Context, notes string) (*llm.NotesExtraction, error)
}

// Service runs the propose/review/commit import pipeline. Propose never
// writes cards; Commit never calls the AI collaborator.
type Service struct {
	cards        cardRepo
	unrecognized unrecognizedRepo
	extractor    extractor
	cfg          config.ImportConfig
	log          *slog.Logger
}

func NewService(
	log *slog.Logger,
	cfg config.ImportConfig,
	cards cardRepo,
	unrecognized unrecognizedRepo,
	extractor extractor,
) *Service {
	return &Service{
		cards:        cards,
		unrecognized: unrecognized,
		extractor:    extractor,
		cfg:          cfg,
		log:          log.With("service", "importer"),
	}
}
