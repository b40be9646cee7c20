package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
)

// CommitResult summarizes one commit run.
type CommitResult struct {
	// Added holds the cards actually inserted, in input order.
	Added []*domain.Card
	// SkippedCount counts selected cards dropped because a matching card
	// appeared between propose and commit.
	SkippedCount int
}

// Commit persists the selected cards of a reviewed proposal. Each card is
// re-checked against the store right before its insert; a duplicate found at
// this point is counted as skipped, never treated as a failure. Inserted
// cards stay inserted even when a later item fails with a store error.
func (s *Service) Commit(ctx context.Context, cards []domain.ProposedCard) (*CommitResult, error) {
	if len(cards) == 0 {
		return nil, domain.NewValidationError("cards", "selection is empty")
	}
	if len(cards) > s.cfg.MaxBatchSize {
		return nil, domain.NewValidationError("cards",
			fmt.Sprintf("%d cards exceed the batch limit of %d", len(cards), s.cfg.MaxBatchSize))
	}

	// Validate the whole selection before touching the store so a malformed
	// card can never leave a partial insert behind.
	for i, proposed := range cards {
		if proposed.Polish == "" || proposed.Russian == "" {
			return nil, domain.NewValidationError("cards",
				fmt.Sprintf("card %d is missing polish or russian", i))
		}
	}

	result := &CommitResult{}
	for _, proposed := range cards {
		key := domain.NormalizeWord(proposed.Polish)
		existing, err := s.cards.FindByNormalized(ctx, []string{key})
		if err != nil {
			return nil, fmt.Errorf("commit card %q: check for duplicate: %w", proposed.Polish, err)
		}
		if len(existing) > 0 {
			result.SkippedCount++
			continue
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
			// The unique index is the authoritative duplicate check; losing
			// the race to it is a skip, not an error.
			if errors.Is(err, domain.ErrAlreadyExists) {
				result.SkippedCount++
				continue
			}
			return nil, fmt.Errorf("commit card %q: %w", proposed.Polish, err)
		}
		result.Added = append(result.Added, card)
	}

	s.log.InfoContext(ctx, "import committed",
		"added", len(result.Added), "skipped", result.SkippedCount)
	return result, nil
}
