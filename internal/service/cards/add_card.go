package cards

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
)

// AddCard creates a single card from manual input. The Polish value is
// checked against existing cards case-insensitively; the unique index on
// the normalized column is the authoritative backstop for races.
func (s *Service) AddCard(ctx context.Context, input AddCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	proposed := domain.NewProposedCard(
		strings.TrimSpace(input.Polish),
		strings.TrimSpace(input.Russian),
		strings.TrimSpace(input.BaseForm),
		strings.TrimSpace(input.Example),
	)

	key := domain.NormalizeWord(proposed.Polish)
	existing, err := s.cards.FindByNormalized(ctx, []string{key})
	if err != nil {
		return nil, fmt.Errorf("check for duplicate: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("card %q: %w", proposed.Polish, domain.ErrAlreadyExists)
	}

	card := &domain.Card{
		ID:        uuid.New(),
		Polish:    proposed.Polish,
		Russian:   proposed.Russian,
		BaseForm:  proposed.BaseForm,
		Example:   proposed.Example,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.cards.Insert(ctx, card); err != nil {
		return nil, fmt.Errorf("insert card: %w", err)
	}

	s.log.InfoContext(ctx, "card added", "card_id", card.ID, "polish", card.Polish)
	return card, nil
}
