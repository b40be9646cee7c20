package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a learned lexical unit: a Polish word or phrase with its Russian
// translation and review statistics. The case-insensitive value of Polish
// (see NormalizeWord) is unique across all persisted cards.
type Card struct {
	ID        uuid.UUID
	Polish    string
	Russian   string
	BaseForm  string
	Example   string
	Stats     CardStats
	CreatedAt time.Time
}

// CardStats holds per-card review counters.
type CardStats struct {
	Correct    int
	Incorrect  int
	LastReview *time.Time
}

// Field length caps, shared by every path that produces a card.
const (
	MaxPolishLen  = 500
	MaxRussianLen = 500
	MaxExampleLen = 1000
)

// ProposedCard is a transient card produced by the import pipeline. It lives
// only within one propose/review/commit cycle and is never persisted as-is;
// commit turns a selected ProposedCard into a Card.
type ProposedCard struct {
	Polish   string
	Russian  string
	BaseForm string
	Example  string

	// OriginalText is the pre-correction spelling as the user supplied it.
	// Set only when the extraction step corrected the spelling.
	OriginalText string
}

// NewProposedCard builds a ProposedCard applying the defaulting rules used by
// every input mode:
//   - baseForm falls back to polish when absent
//   - example falls back to the empty string
//   - all fields are trimmed and length-capped
func NewProposedCard(polish, russian, baseForm, example string) ProposedCard {
	polish = Truncate(polish, MaxPolishLen)
	if baseForm == "" {
		baseForm = polish
	}
	return ProposedCard{
		Polish:   polish,
		Russian:  Truncate(russian, MaxRussianLen),
		BaseForm: Truncate(baseForm, MaxPolishLen),
		Example:  Truncate(example, MaxExampleLen),
	}
}
