package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
)

// MemoryIdentityRepository is an in-process IdentityRepositoryInterface used
// by tests and extractor-only development setups. The mutex makes the
// count-and-insert step a single critical section, giving the same capacity
// guarantee as the Postgres implementation.
type MemoryIdentityRepository struct {
	mu         sync.RWMutex
	identities []domain.Identity
	capacity   int
}

func NewMemoryIdentityRepository(capacity int) *MemoryIdentityRepository {
	return &MemoryIdentityRepository{capacity: capacity}
}

func (r *MemoryIdentityRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.identities), nil
}

func (r *MemoryIdentityRepository) Insert(ctx context.Context, identity *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.identities) >= r.capacity {
		return domain.ErrCapacityReached
	}

	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = time.Now().UTC()
	}

	stored := domain.Identity{
		ID:        identity.ID,
		Embedding: append([]float64(nil), identity.Embedding...),
		Threshold: identity.Threshold,
		CreatedAt: identity.CreatedAt,
	}
	r.identities = append(r.identities, stored)

	return nil
}

// ListAll returns copies in insertion order
func (r *MemoryIdentityRepository) ListAll(ctx context.Context) ([]domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Identity, len(r.identities))
	for i, identity := range r.identities {
		out[i] = domain.Identity{
			ID:        identity.ID,
			Embedding: append([]float64(nil), identity.Embedding...),
			Threshold: identity.Threshold,
			CreatedAt: identity.CreatedAt,
		}
	}
	return out, nil
}

// Ensure MemoryIdentityRepository implements the contract
var _ IdentityRepositoryInterface = (*MemoryIdentityRepository)(nil)
