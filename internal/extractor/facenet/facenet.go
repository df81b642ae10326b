// Package facenet extracts face embeddings through a FaceNet sidecar service
// (an MTCNN detector plus FaceNet-512 encoder behind a small HTTP API).
package facenet

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/elifarslancelik/GARLIC-Q/internal/extractor"
)

// Extractor implements extractor.Extractor against the FaceNet sidecar
type Extractor struct {
	client *Client
	dim    int
}

// New creates a FaceNet extractor without probing the sidecar
func New(config Config, dim int) *Extractor {
	return &Extractor{
		client: NewClient(config),
		dim:    dim,
	}
}

// NewWithProbe creates a FaceNet extractor and verifies the sidecar is up and
// its models loaded. Call this from main so a broken model install fails the
// boot instead of every request.
func NewWithProbe(ctx context.Context, config Config, dim int) (*Extractor, error) {
	e := New(config, dim)
	if err := e.client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("probe facenet sidecar: %w", err)
	}
	return e, nil
}

// Extract returns the embedding of the first face in the image.
// extractor.ErrNoFace means the input had no detectable face; any other error
// is a sidecar failure.
func (e *Extractor) Extract(ctx context.Context, image []byte) ([]float64, error) {
	imageBase64 := base64.StdEncoding.EncodeToString(image)

	resp, err := e.client.Represent(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("extract embedding: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, extractor.ErrNoFace
	}

	embedding := resp.Results[0].Embedding
	if len(embedding) != e.dim {
		return nil, fmt.Errorf("%w: embedding has %d dimensions, want %d",
			ErrInvalidResponse, len(embedding), e.dim)
	}

	return embedding, nil
}

// Ensure Extractor implements extractor.Extractor
var _ extractor.Extractor = (*Extractor)(nil)
