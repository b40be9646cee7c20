// Package card implements the Card repository using PostgreSQL.
package card

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/czytanka/backend/internal/adapter/postgres"
	"github.com/czytanka/backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// cardColumns is the scan order used by every SELECT in this package.
var cardColumns = []string{
	"id", "polish", "russian", "base_form", "example",
	"correct_count", "incorrect_count", "last_review_at", "created_at",
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns cards ordered by created_at DESC, capped at limit.
func (r *Repo) List(ctx context.Context, limit int) ([]*domain.Card, error) {
	query, args, err := psql.Select(cardColumns...).
		From("cards").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// FindByNormalized returns all cards whose polish_normalized matches one of
// the given keys. Callers pass domain.NormalizeWord output; this is the
// case-insensitive dedup lookup. A key with no match simply has no row.
func (r *Repo) FindByNormalized(ctx context.Context, keys []string) ([]*domain.Card, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	query, args, err := psql.Select(cardColumns...).
		From("cards").
		Where(sq.Eq{"polish_normalized": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find cards query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find cards by normalized: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// Insert persists a new card. The unique index on polish_normalized turns a
// concurrent duplicate into domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, c *domain.Card) error {
	query, args, err := psql.Insert("cards").
		Columns("id", "polish", "polish_normalized", "russian", "base_form",
			"example", "correct_count", "incorrect_count", "last_review_at", "created_at").
		Values(c.ID, c.Polish, domain.NormalizeWord(c.Polish), c.Russian, c.BaseForm,
			c.Example, c.Stats.Correct, c.Stats.Incorrect, c.Stats.LastReview, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert card query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "card", c.Polish)
	}

	return nil
}

// Delete removes a card by id. Returns domain.ErrNotFound when absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("cards").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "card", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateStats bumps the correct or incorrect counter and stamps the review
// time, returning the updated card. Returns domain.ErrNotFound when absent.
func (r *Repo) UpdateStats(ctx context.Context, id uuid.UUID, correct bool, reviewedAt time.Time) (*domain.Card, error) {
	counter := "incorrect_count"
	if correct {
		counter = "correct_count"
	}

	query, args, err := psql.Update("cards").
		Set(counter, sq.Expr(counter+" + 1")).
		Set("last_review_at", reviewedAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update stats query: %w", err)
	}

	c, err := scanCard(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", id.String())
	}

	return c, nil
}

func columnList() string {
	list := ""
	for i, col := range cardColumns {
		if i > 0 {
			list += ", "
		}
		list += col
	}
	return list
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var c domain.Card
	err := row.Scan(
		&c.ID, &c.Polish, &c.Russian, &c.BaseForm, &c.Example,
		&c.Stats.Correct, &c.Stats.Incorrect, &c.Stats.LastReview, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCards(rows pgx.Rows) ([]*domain.Card, error) {
	var cards []*domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return cards, nil
}
