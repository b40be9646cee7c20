package cards

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DeleteCard removes a card permanently. Deleting a card that does not
// exist returns domain.ErrNotFound.
func (s *Service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	s.log.InfoContext(ctx, "card deleted", "card_id", id)
	return nil
}
