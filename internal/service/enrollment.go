package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
	"github.com/elifarslancelik/GARLIC-Q/internal/extractor"
)

// IdentityStore is the persistence contract consumed by the services.
// Insert must enforce the capacity bound atomically; ListAll must return
// records in insertion order.
type IdentityStore interface {
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, identity *domain.Identity) error
	ListAll(ctx context.Context) ([]domain.Identity, error)
}

// EnrollmentService creates identity records from face images. It is the only
// component allowed to create identities; nothing updates or deletes them.
type EnrollmentService struct {
	store     IdentityStore
	extractor extractor.Extractor
	capacity  int
}

func NewEnrollmentService(store IdentityStore, ext extractor.Extractor, capacity int) *EnrollmentService {
	return &EnrollmentService{
		store:     store,
		extractor: ext,
		capacity:  capacity,
	}
}

// Enroll extracts an embedding from the image and persists a new identity.
//
// The count check up front is only a cheap short-circuit that spares an
// extractor call when the population is already full; the store's Insert
// re-checks capacity atomically, so two enrollments racing past the check
// cannot both commit.
func (s *EnrollmentService) Enroll(ctx context.Context, imageBytes []byte) (uuid.UUID, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return uuid.Nil, domain.ErrPersistence.WithError(fmt.Errorf("count population: %w", err))
	}

	if count >= s.capacity {
		return uuid.Nil, domain.ErrCapacityReached
	}

	embedding, err := s.extractor.Extract(ctx, imageBytes)
	if err != nil {
		if errors.Is(err, extractor.ErrNoFace) {
			return uuid.Nil, domain.ErrExtractionFailed
		}
		return uuid.Nil, domain.ErrExtractorUnavailable.WithError(err)
	}

	identity := &domain.Identity{
		Embedding: embedding,
	}

	if err := s.store.Insert(ctx, identity); err != nil {
		if errors.Is(err, domain.ErrCapacityReached) {
			return uuid.Nil, domain.ErrCapacityReached
		}
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return uuid.Nil, err
		}
		return uuid.Nil, domain.ErrPersistence.WithError(err)
	}

	return identity.ID, nil
}
