package cards

import (
	"context"
	"fmt"

	"github.com/czytanka/backend/internal/domain"
)

// ListCards returns the newest cards first, capped at MaxListSize.
func (s *Service) ListCards(ctx context.Context) ([]*domain.Card, error) {
	cards, err := s.cards.List(ctx, MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}
