package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool the repositories use. pgxmock
// satisfies it too, which keeps the unit tests off a real database.
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// IdentityRepositoryInterface is the persistence contract for enrolled
// identities. Insert must uphold the capacity invariant atomically: no
// interleaving of concurrent calls may push the population past capacity.
type IdentityRepositoryInterface interface {
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, identity *domain.Identity) error
	ListAll(ctx context.Context) ([]domain.Identity, error)
}
