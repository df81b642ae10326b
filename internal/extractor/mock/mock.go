// Package mock provides a deterministic extractor for tests and for running
// the API without the FaceNet sidecar.
package mock

import (
	"context"
	"crypto/sha256"
	"math"

	"github.com/elifarslancelik/GARLIC-Q/internal/extractor"
)

// minImageSize mimics a real detector rejecting inputs too small to hold a face
const minImageSize = 1000

// Extractor implements extractor.Extractor with sha256-derived embeddings:
// the same image always maps to the same unit-norm vector, different images
// almost never collide.
type Extractor struct {
	dim int
}

// New creates a mock extractor producing vectors of the given dimension
func New(dim int) *Extractor {
	return &Extractor{dim: dim}
}

// Extract derives a deterministic embedding from the image hash
func (e *Extractor) Extract(ctx context.Context, image []byte) ([]float64, error) {
	if len(image) < minImageSize {
		return nil, extractor.ErrNoFace
	}

	return generateEmbedding(image, e.dim), nil
}

func generateEmbedding(image []byte, dim int) []float64 {
	hash := sha256.Sum256(image)
	embedding := make([]float64, dim)
	hashLen := len(hash)

	for i := 0; i < dim; i++ {
		idx := i % hashLen
		embedding[i] = (float64(hash[idx])/255.0)*2 - 1
	}

	norm := 0.0
	for _, v := range embedding {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	for i := range embedding {
		embedding[i] /= norm
	}

	return embedding
}

// Ensure Extractor implements extractor.Extractor
var _ extractor.Extractor = (*Extractor)(nil)
