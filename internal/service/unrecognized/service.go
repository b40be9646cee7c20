package unrecognized

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
)

type wordRepo interface {
	List(ctx context.Context, status *domain.UnrecognizedStatus) ([]*domain.UnrecognizedWord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UnrecognizedWord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UnrecognizedStatus) (*domain.UnrecognizedWord, error)
}

// Service manages the pending/resolved/dismissed lifecycle of unrecognized
// words. Words are created by the import pipeline; this service only reads
// and transitions them.
type Service struct {
	words wordRepo
	log   *slog.Logger
}

func NewService(log *slog.Logger, words wordRepo) *Service {
	return &Service{
		words: words,
		log:   log.With("service", "unrecognized"),
	}
}
