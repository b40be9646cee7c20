package unrecognized

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
)

// SetStatus moves a pending word into a terminal state. Only RESOLVED and
// DISMISSED are valid targets. Setting status on a word that is already
// terminal is idempotent: the word is returned unchanged, whatever terminal
// state it holds.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.UnrecognizedStatus) (*domain.UnrecognizedWord, error) {
	if !status.IsTerminal() {
		return nil, domain.NewValidationError("status",
			fmt.Sprintf("%q is not a terminal status", status))
	}

	word, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get unrecognized word %s: %w", id, err)
	}
	if word.Status.IsTerminal() {
		return word, nil
	}

	updated, err := s.words.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("set status of %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "unrecognized word transitioned",
		"word_id", id, "status", status)
	return updated, nil
}
