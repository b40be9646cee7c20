package unrecognized

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
)

// ManualSeed prefills the manual-entry form when a word is resolved. The
// user finishes the card (or abandons it) on their own; the resolution does
// not wait for, or depend on, that card being created.
type ManualSeed struct {
	Polish string
}

// Resolve marks a pending word RESOLVED and returns a prefilled seed for
// manual card entry. Resolving an already-terminal word returns the seed
// without another transition.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID) (*ManualSeed, error) {
	word, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get unrecognized word %s: %w", id, err)
	}

	if !word.Status.IsTerminal() {
		if _, err := s.words.UpdateStatus(ctx, id, domain.UnrecognizedResolved); err != nil {
			return nil, fmt.Errorf("resolve word %s: %w", id, err)
		}
		s.log.InfoContext(ctx, "unrecognized word resolved", "word_id", id)
	}

	return &ManualSeed{Polish: word.Text}, nil
}
