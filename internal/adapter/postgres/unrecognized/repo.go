// Package unrecognized implements the UnrecognizedWord repository using
// PostgreSQL.
package unrecognized

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/czytanka/backend/internal/adapter/postgres"
	"github.com/czytanka/backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var wordColumns = []string{
	"id", "text", "source_context", "ai_note", "status", "created_at",
}

// Repo provides unrecognized-word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new unrecognized-word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// InsertBatch persists a batch of unrecognized words in one statement.
// An empty batch is a no-op.
func (r *Repo) InsertBatch(ctx context.Context, words []*domain.UnrecognizedWord) error {
	if len(words) == 0 {
		return nil
	}

	builder := psql.Insert("unrecognized_words").
		Columns(wordColumns...)
	for _, w := range words {
		builder = builder.Values(w.ID, w.Text, w.SourceContext, w.AINote, w.Status, w.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert unrecognized query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert unrecognized words: %w", err)
	}

	return nil
}

// List returns unrecognized words ordered by created_at DESC, optionally
// filtered by status. A nil filter returns every status.
func (r *Repo) List(ctx context.Context, status *domain.UnrecognizedStatus) ([]*domain.UnrecognizedWord, error) {
	builder := psql.Select(wordColumns...).
		From("unrecognized_words").
		OrderBy("created_at DESC")
	if status != nil {
		builder = builder.Where(sq.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list unrecognized query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list unrecognized words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// GetByID returns one unrecognized word. Returns domain.ErrNotFound when absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UnrecognizedWord, error) {
	query, args, err := psql.Select(wordColumns...).
		From("unrecognized_words").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get unrecognized query: %w", err)
	}

	w, err := scanWord(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "unrecognized_word", id.String())
	}

	return w, nil
}

// UpdateStatus sets the status and returns the updated word.
// Returns domain.ErrNotFound when absent.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UnrecognizedStatus) (*domain.UnrecognizedWord, error) {
	query, args, err := psql.Update("unrecognized_words").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, text, source_context, ai_note, status, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update status query: %w", err)
	}

	w, err := scanWord(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "unrecognized_word", id.String())
	}

	return w, nil
}

func scanWord(row pgx.Row) (*domain.UnrecognizedWord, error) {
	var w domain.UnrecognizedWord
	err := row.Scan(&w.ID, &w.Text, &w.SourceContext, &w.AINote, &w.Status, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func scanWords(rows pgx.Rows) ([]*domain.UnrecognizedWord, error) {
	var words []*domain.UnrecognizedWord
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unrecognized word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unrecognized words: %w", err)
	}
	return words, nil
}
