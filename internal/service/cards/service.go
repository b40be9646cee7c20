package cards

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
)

// MaxListSize caps how many cards a single listing returns.
const MaxListSize = 500

type cardRepo interface {
	List(ctx context.Context, limit int) ([]*domain.Card, error)
	FindByNormalized(ctx context.Context, keys []string) ([]*domain.Card, error)
	Insert(ctx context.Context, card *domain.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStats(ctx context.Context, id uuid.UUID, correct bool, reviewedAt time.Time) (*domain.Card, error)
}

// Service implements flashcard CRUD and review bookkeeping.
type Service struct {
	cards cardRepo
	log   *slog.Logger
}

func NewService(log *slog.Logger, cards cardRepo) *Service {
	return &Service{
		cards: cards,
		log:   log.With("service", "cards"),
	}
}
