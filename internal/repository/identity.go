package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
)

// enrollmentLockKey is the advisory lock key serializing enrollment inserts.
// The lock is transaction scoped, so it releases on commit and rollback alike.
const enrollmentLockKey = 427_001

// IdentityRepository persists enrolled identities in Postgres with pgvector
// embeddings. The population is small and bounded, so ListAll reads it whole.
type IdentityRepository struct {
	pool     PgxPool
	capacity int
}

func NewIdentityRepository(pool PgxPool, capacity int) *IdentityRepository {
	return &IdentityRepository{pool: pool, capacity: capacity}
}

func (r *IdentityRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM identities`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count identities: %w", err)
	}
	return count, nil
}

// Insert stores a new identity, enforcing the capacity bound inside a single
// transaction. Concurrent inserts serialize on a transaction-scoped advisory
// lock, so the count observed before insert cannot go stale: check-then-act
// cannot interleave and the population never exceeds capacity.
func (r *IdentityRepository) Insert(ctx context.Context, identity *domain.Identity) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.ErrPersistence.WithError(fmt.Errorf("begin insert: %w", err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, enrollmentLockKey); err != nil {
		return domain.ErrPersistence.WithError(fmt.Errorf("acquire enrollment lock: %w", err))
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM identities`).Scan(&count); err != nil {
		return domain.ErrPersistence.WithError(fmt.Errorf("count identities: %w", err))
	}

	if count >= r.capacity {
		return domain.ErrCapacityReached
	}

	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}

	floats := make([]float32, len(identity.Embedding))
	for i, v := range identity.Embedding {
		floats[i] = float32(v)
	}
	embedding := pgvector.NewVector(floats)

	query := `
		INSERT INTO identities (id, embedding, threshold, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	err = tx.QueryRow(ctx, query, identity.ID, embedding, identity.Threshold).
		Scan(&identity.CreatedAt)
	if err != nil {
		return domain.ErrPersistence.WithError(fmt.Errorf("insert identity: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ErrPersistence.WithError(fmt.Errorf("commit insert: %w", err))
	}

	return nil
}

// ListAll returns the whole population in insertion order. Authentication
// relies on this ordering for deterministic tie-breaking: the identity
// enrolled first wins when two embeddings score identically.
func (r *IdentityRepository) ListAll(ctx context.Context) ([]domain.Identity, error) {
	query := `
		SELECT id, embedding, threshold, created_at
		FROM identities
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	defer rows.Close()

	var identities []domain.Identity
	for rows.Next() {
		var identity domain.Identity
		var embedding pgvector.Vector

		if err := rows.Scan(&identity.ID, &embedding, &identity.Threshold, &identity.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan identity: %w", err)
		}

		slice := embedding.Slice()
		identity.Embedding = make([]float64, len(slice))
		for i, v := range slice {
			identity.Embedding[i] = float64(v)
		}

		identities = append(identities, identity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate identities: %w", err)
	}

	return identities, nil
}

// Ensure IdentityRepository implements the contract
var _ IdentityRepositoryInterface = (*IdentityRepository)(nil)
