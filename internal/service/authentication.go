package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
	"github.com/elifarslancelik/GARLIC-Q/internal/extractor"
	"github.com/elifarslancelik/GARLIC-Q/internal/similarity"
)

// AuthenticationService matches a submitted face against the whole enrolled
// population. The linear scan is fine at the bounded capacity; the ranking
// math lives in the similarity package so an index could replace the loop
// without touching the decision logic.
type AuthenticationService struct {
	store            IdentityStore
	extractor        extractor.Extractor
	defaultThreshold float64
}

func NewAuthenticationService(store IdentityStore, ext extractor.Extractor, defaultThreshold float64) *AuthenticationService {
	return &AuthenticationService{
		store:            store,
		extractor:        ext,
		defaultThreshold: defaultThreshold,
	}
}

// Authenticate extracts an embedding from the image, finds the best-scoring
// identity and decides against the applicable threshold.
//
// The scan compares with strict greater-than against the running best, so on
// equal scores the record returned first by the store wins; ListAll yields
// insertion order, which makes ties deterministic (first enrolled wins).
// The threshold comparison is also strict: a score exactly at the threshold
// is rejected.
//
// A rejection is a decision, not an error: Accepted is false and Similarity
// carries the best score for diagnostics. The near-match identity is never
// exposed on rejection.
func (s *AuthenticationService) Authenticate(ctx context.Context, imageBytes []byte) (*domain.AuthDecision, error) {
	loginEmbedding, err := s.extractor.Extract(ctx, imageBytes)
	if err != nil {
		if errors.Is(err, extractor.ErrNoFace) {
			return nil, domain.ErrExtractionFailed
		}
		return nil, domain.ErrExtractorUnavailable.WithError(err)
	}

	population, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, domain.ErrPersistence.WithError(fmt.Errorf("load population: %w", err))
	}

	if len(population) == 0 {
		return nil, domain.ErrNoEnrolledIdentities
	}

	best := population[0]
	bestSimilarity := similarity.Cosine(loginEmbedding, best.Embedding)

	for _, candidate := range population[1:] {
		score := similarity.Cosine(loginEmbedding, candidate.Embedding)
		if score > bestSimilarity {
			bestSimilarity = score
			best = candidate
		}
	}

	threshold := s.defaultThreshold
	if best.Threshold != nil {
		threshold = *best.Threshold
	}

	if bestSimilarity > threshold {
		return &domain.AuthDecision{
			Accepted:   true,
			IdentityID: best.ID,
			Similarity: bestSimilarity,
		}, nil
	}

	return &domain.AuthDecision{
		Accepted:   false,
		Similarity: bestSimilarity,
	}, nil
}
