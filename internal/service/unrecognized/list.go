package unrecognized

import (
	"context"
	"fmt"

	"github.com/czytanka/backend/internal/domain"
)

// List returns unrecognized words, newest first, optionally filtered by
// status. A nil filter returns all words regardless of state.
func (s *Service) List(ctx context.Context, status *domain.UnrecognizedStatus) ([]*domain.UnrecognizedWord, error) {
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", *status))
	}

	words, err := s.words.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list unrecognized words: %w", err)
	}
	return words, nil
}
