package importer

import (
	"fmt"

	"github.com/czytanka/backend/internal/domain"
	"github.com/czytanka/backend/internal/llm"
)

// Proposal is the review-stage snapshot of one import run. Nothing in it is
// persisted as a card yet; the user toggles the selection and commits the
// selected cards in a separate call.
type Proposal struct {
	// Cards are the extraction results in input order. Every card starts
	// selected.
	Cards []domain.ProposedCard
	// Duplicates lists input values dropped because a matching card already
	// exists. Advisory only: commit re-checks every item.
	Duplicates []string
	// Unrecognized lists tokens the extraction could not classify as Polish
	// lexical units. Already persisted as pending unrecognized words.
	Unrecognized []llm.UnrecognizedNote
	// Warnings are non-fatal notes from the extraction step.
	Warnings []string

	selected []bool
}

func newProposal(cards []domain.ProposedCard, duplicates []string, unrecognized []llm.UnrecognizedNote, warnings []string) *Proposal {
	selected := make([]bool, len(cards))
	for i := range selected {
		selected[i] = true
	}
	return &Proposal{
		Cards:        cards,
		Duplicates:   duplicates,
		Unrecognized: unrecognized,
		Warnings:     warnings,
		selected:     selected,
	}
}

// Selected reports whether the card at index i is currently selected.
func (p *Proposal) Selected(i int) bool {
	return i >= 0 && i < len(p.selected) && p.selected[i]
}

// Toggle flips the selection of the card at index i.
func (p *Proposal) Toggle(i int) error {
	if i < 0 || i >= len(p.selected) {
		return fmt.Errorf("card index %d out of range: %w", i, domain.ErrNotFound)
	}
	p.selected[i] = !p.selected[i]
	return nil
}

// SelectedCards returns the currently selected cards in input order.
func (p *Proposal) SelectedCards() []domain.ProposedCard {
	out := make([]domain.ProposedCard, 0, len(p.Cards))
	for i, c := range p.Cards {
		if p.selected[i] {
			out = append(out, c)
		}
	}
	return out
}
