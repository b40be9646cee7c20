package importer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/czytanka/backend/internal/domain"
)

// Mode selects how the raw import input is interpreted.
type Mode string

const (
	// ModeComma treats the input as a comma-separated word list.
	ModeComma Mode = "COMMA"
	// ModeLines treats the input as one word or phrase per line.
	ModeLines Mode = "LINES"
	// ModeNotes treats the input as a freeform blob of messy notes.
	ModeNotes Mode = "NOTES"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeComma, ModeLines, ModeNotes:
		return true
	}
	return false
}

// ProposeInput carries one raw import request.
type ProposeInput struct {
	Mode  Mode
	Input string
}

func (in *ProposeInput) validate(cfg configLimits) ([]string, error) {
	if !in.Mode.IsValid() {
		return nil, domain.NewValidationError("mode", fmt.Sprintf("unknown mode %q", in.Mode))
	}

	raw := strings.TrimSpace(in.Input)
	if raw == "" {
		return nil, domain.NewValidationError("input", "is required")
	}

	if in.Mode == ModeNotes {
		if utf8.RuneCountInString(raw) > cfg.maxNotesLen {
			return nil, domain.NewValidationError("input", fmt.Sprintf("exceeds %d characters", cfg.maxNotesLen))
		}
		return nil, nil
	}

	candidates := splitCandidates(in.Mode, raw)
	if len(candidates) == 0 {
		return nil, domain.NewValidationError("input", "contains no words")
	}
	if len(candidates) > cfg.maxBatchSize {
		return nil, domain.NewValidationError("input",
			fmt.Sprintf("%d words exceed the batch limit of %d", len(candidates), cfg.maxBatchSize))
	}
	for _, c := range candidates {
		if utf8.RuneCountInString(c) > cfg.maxCandidateLen {
			return nil, domain.NewValidationError("input",
				fmt.Sprintf("word %q exceeds %d characters", domain.Truncate(c, 20), cfg.maxCandidateLen))
		}
	}
	return candidates, nil
}

type configLimits struct {
	maxBatchSize    int
	maxCandidateLen int
	maxNotesLen     int
}

// splitCandidates cuts raw list input into trimmed candidates, dropping
// empties. Order is preserved; in-batch duplicates are kept as entered.
func splitCandidates(mode Mode, raw string) []string {
	var parts []string
	switch mode {
	case ModeComma:
		parts = strings.Split(raw, ",")
	case ModeLines:
		parts = strings.Split(raw, "\n")
	default:
		return nil
	}

	candidates := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}
