// Package postgres holds the shared plumbing for PostgreSQL repositories:
// connection pool construction, embedded migrations, the Querier interface,
// and error translation into domain errors.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the query surface repositories depend on. *pgxpool.Pool
// implements it in production; pgxmock implements it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
