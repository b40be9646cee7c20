package cards

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czytanka/backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg cards . cardRepo

func newTestService(repo *cardRepoMock) *Service {
	return NewService(slog.New(slog.DiscardHandler), repo)
}

func TestAddCard_Success(t *testing.T) {
	repo := &cardRepoMock{
		FindByNormalizedFunc: func(ctx context.Context, keys []string) ([]*domain.Card, error) {
			return nil, nil
		},
		InsertFunc: func(ctx context.Context, card *domain.Card) error {
			return nil
		},
	}
	svc := newTestService(repo)

	card, err := svc.AddCard(context.Background(), AddCardInput{
		Polish:  "  Kot  ",
		Russian: "кот",
	})
	require.NoError(t, err)

	assert.Equal(t, "Kot", card.Polish)
	assert.Equal(t, "кот", card.Russian)
	assert.Equal(t, "Kot", card.BaseForm, "base form defaults to polish")
	assert.Empty(t, card.Example)
	assert.NotEqual(t, uuid.Nil, card.ID)
	assert.Zero(t, card.Stats.Correct)

	require.Len(t, repo.FindByNormalizedCalls(), 1)
	assert.Equal(t, []string{"kot"}, repo.FindByNormalizedCalls()[0].Keys)
	require.Len(t, repo.InsertCalls(), 1)
}

func TestAddCard_Validation(t *testing.T) {
	svc := newTestService(&cardRepoMock{})

	tests := []struct {
		name  string
		input AddCardInput
	}{
		{"empty polish", AddCardInput{Russian: "кот"}},
		{"empty russian", AddCardInput{Polish: "kot"}},
		{"polish too long", AddCardInput{Polish: strings.Repeat("a", 501), Russian: "кот"}},
		{"example too long", AddCardInput{Polish: "kot", Russian: "кот", Example: strings.Repeat("a", 1001)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddCard(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAddCard_Duplicate(t *testing.T) {
	repo := &cardRepoMock{
		FindByNormalizedFunc: func(ctx context.Context, keys []string) ([]*domain.Card, error) {
			return []*domain.Card{{Polish: "kot"}}, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.AddCard(context.Background(), AddCardInput{Polish: "KOT", Russian: "кот"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Empty(t, repo.InsertCalls(), "no insert after duplicate check fails")
}

func TestAddCard_InsertRace(t *testing.T) {
	repo := &cardRepoMock{
		FindByNormalizedFunc: func(ctx context.Context, keys []string) ([]*domain.Card, error) {
			return nil, nil
		},
		InsertFunc: func(ctx context.Context, card *domain.Card) error {
			return domain.ErrAlreadyExists
		},
	}
	svc := newTestService(repo)

	_, err := svc.AddCard(context.Background(), AddCardInput{Polish: "kot", Russian: "кот"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestDeleteCard_NotFound(t *testing.T) {
	repo := &cardRepoMock{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return domain.ErrNotFound
		},
	}
	svc := newTestService(repo)

	err := svc.DeleteCard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordReview(t *testing.T) {
	id := uuid.New()
	repo := &cardRepoMock{
		UpdateStatsFunc: func(ctx context.Context, gotID uuid.UUID, correct bool, reviewedAt time.Time) (*domain.Card, error) {
			assert.Equal(t, id, gotID)
			assert.True(t, correct)
			assert.WithinDuration(t, time.Now().UTC(), reviewedAt, time.Minute)
			return &domain.Card{ID: gotID, Stats: domain.CardStats{Correct: 1, LastReview: &reviewedAt}}, nil
		},
	}
	svc := newTestService(repo)

	card, err := svc.RecordReview(context.Background(), id, true)
	require.NoError(t, err)
	assert.Equal(t, 1, card.Stats.Correct)
	require.NotNil(t, card.Stats.LastReview)
}

func TestReviewQueue_ShufflesWholeDeck(t *testing.T) {
	deck := make([]*domain.Card, 100)
	for i := range deck {
		deck[i] = &domain.Card{ID: uuid.New()}
	}
	repo := &cardRepoMock{
		ListFunc: func(ctx context.Context, limit int) ([]*domain.Card, error) {
			out := make([]*domain.Card, len(deck))
			copy(out, deck)
			return out, nil
		},
	}
	svc := newTestService(repo)

	queue, err := svc.ReviewQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, len(deck))

	seen := make(map[uuid.UUID]bool, len(queue))
	for _, c := range queue {
		seen[c.ID] = true
	}
	assert.Len(t, seen, len(deck), "shuffle keeps every card exactly once")
}

func TestReviewQueue_StoreError(t *testing.T) {
	repo := &cardRepoMock{
		ListFunc: func(ctx context.Context, limit int) ([]*domain.Card, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestService(repo)

	_, err := svc.ReviewQueue(context.Background())
	assert.Error(t, err)
}
