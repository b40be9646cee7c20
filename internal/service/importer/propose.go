package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/czytanka/backend/internal/domain"
	"github.com/czytanka/backend/internal/llm"
)

// maxSourceContextLen caps the notes excerpt stored with each unrecognized
// word.
const maxSourceContextLen = 200

// Propose runs the extraction stage of an import: validate and split the
// input, drop candidates that already exist as cards, and call the AI
// collaborator once for the remainder. The returned Proposal is a pure
// review value; no card is written until Commit.
func (s *Service) Propose(ctx context.Context, input ProposeInput) (*Proposal, error) {
	limits := configLimits{
		maxBatchSize:    s.cfg.MaxBatchSize,
		maxCandidateLen: s.cfg.MaxCandidateLen,
		maxNotesLen:     s.cfg.MaxNotesLen,
	}
	candidates, err := input.validate(limits)
	if err != nil {
		return nil, err
	}

	if input.Mode == ModeNotes {
		return s.proposeFromNotes(ctx, input.Input)
	}
	return s.proposeFromList(ctx, candidates)
}

func (s *Service) proposeFromList(ctx context.Context, candidates []string) (*Proposal, error) {
	fresh, duplicates, err := s.partitionKnown(ctx, candidates)
	if err != nil {
		return nil, err
	}

	// Everything already known: report duplicates without a collaborator call.
	if len(fresh) == 0 {
		s.log.InfoContext(ctx, "import proposal has no new words", "duplicates", len(duplicates))
		return newProposal(nil, duplicates, nil, nil), nil
	}

	cards, err := s.extractor.BatchTranslate(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("translate batch: %w", err)
	}

	s.log.InfoContext(ctx, "import proposal ready",
		"proposed", len(cards), "duplicates", len(duplicates))
	return newProposal(cards, duplicates, nil, nil), nil
}

func (s *Service) proposeFromNotes(ctx context.Context, notes string) (*Proposal, error) {
	result, err := s.extractor.ExtractFromNotes(ctx, notes)
	if err != nil {
		return nil, fmt.Errorf("extract notes: %w", err)
	}

	polishValues := make([]string, len(result.Cards))
	for i, c := range result.Cards {
		polishValues[i] = c.Polish
	}
	freshValues, duplicates, err := s.partitionKnown(ctx, polishValues)
	if err != nil {
		return nil, err
	}
	freshSet := make(map[string]bool, len(freshValues))
	for _, v := range freshValues {
		freshSet[domain.NormalizeWord(v)] = true
	}
	cards := make([]domain.ProposedCard, 0, len(result.Cards))
	for _, c := range result.Cards {
		if freshSet[domain.NormalizeWord(c.Polish)] {
			cards = append(cards, c)
		}
	}

	// Unrecognized words outlive the proposal: they are persisted now so the
	// user can resolve or dismiss them later even if this import is abandoned.
	if err := s.persistUnrecognized(ctx, notes, result); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "notes proposal ready",
		"proposed", len(cards), "duplicates", len(duplicates),
		"unrecognized", len(result.Unrecognized), "warnings", len(result.Warnings))
	return newProposal(cards, duplicates, result.Unrecognized, result.Warnings), nil
}

// partitionKnown splits values into those without an existing card and those
// whose normalized form is already taken. Order is preserved in both halves.
func (s *Service) partitionKnown(ctx context.Context, values []string) (fresh, duplicates []string, err error) {
	if len(values) == 0 {
		return nil, nil, nil
	}

	keys := make([]string, len(values))
	for i, v := range values {
		keys[i] = domain.NormalizeWord(v)
	}
	existing, err := s.cards.FindByNormalized(ctx, keys)
	if err != nil {
		return nil, nil, fmt.Errorf("check for duplicates: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[domain.NormalizeWord(c.Polish)] = true
	}

	for i, v := range values {
		if known[keys[i]] {
			duplicates = append(duplicates, v)
		} else {
			fresh = append(fresh, v)
		}
	}
	return fresh, duplicates, nil
}

func (s *Service) persistUnrecognized(ctx context.Context, notes string, result *llm.NotesExtraction) error {
	if len(result.Unrecognized) == 0 {
		return nil
	}

	now := time.Now().UTC()
	words := make([]*domain.UnrecognizedWord, 0, len(result.Unrecognized))
	for _, u := range result.Unrecognized {
		words = append(words, &domain.UnrecognizedWord{
			ID:            uuid.New(),
			Text:          u.Text,
			SourceContext: domain.Truncate(notes, maxSourceContextLen),
			AINote:        u.Note,
			Status:        domain.UnrecognizedPending,
			CreatedAt:     now,
		})
	}
	if err := s.unrecognized.InsertBatch(ctx, words); err != nil {
		return fmt.Errorf("persist unrecognized words: %w", err)
	}
	return nil
}
