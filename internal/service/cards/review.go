package cards

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
)

// RecordReview bumps the correct or incorrect counter of a card and stamps
// the review time. Returns the updated card.
func (s *Service) RecordReview(ctx context.Context, id uuid.UUID, correct bool) (*domain.Card, error) {
	card, err := s.cards.UpdateStats(ctx, id, correct, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("record review for %s: %w", id, err)
	}
	return card, nil
}

// ReviewQueue returns the full deck in a fresh random order. Every call
// shuffles independently so repeated sessions do not drill the same sequence.
func (s *Service) ReviewQueue(ctx context.Context) ([]*domain.Card, error) {
	cards, err := s.cards.List(ctx, MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("load review queue: %w", err)
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards, nil
}
