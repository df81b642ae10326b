// Package face wires the configured extractor backend.
package face

import (
	"context"
	"fmt"

	"github.com/elifarslancelik/GARLIC-Q/internal/config"
	"github.com/elifarslancelik/GARLIC-Q/internal/extractor"
	"github.com/elifarslancelik/GARLIC-Q/internal/extractor/facenet"
	"github.com/elifarslancelik/GARLIC-Q/internal/extractor/mock"
)

// ExtractorType defines supported embedding extractor backends
type ExtractorType string

const (
	// ExtractorTypeFaceNet is the FaceNet sidecar (real embeddings)
	ExtractorTypeFaceNet ExtractorType = "facenet"
	// ExtractorTypeMock is the deterministic hash-based extractor (dev/test)
	ExtractorTypeMock ExtractorType = "mock"
)

// NewExtractor creates an extractor instance based on configuration.
// The FaceNet backend is probed once here; a sidecar that failed to load its
// models fails the boot rather than every request.
//
// Environment variables:
//   - EXTRACTOR_TYPE: "facenet" or "mock" (default: "facenet")
//   - FACENET_URL: FaceNet sidecar URL (default: "http://localhost:5005")
//   - EMBEDDING_DIM: embedding dimension (default: 512)
func NewExtractor(ctx context.Context, cfg *config.Config) (extractor.Extractor, error) {
	switch ExtractorType(cfg.ExtractorType) {
	case ExtractorTypeMock:
		return mock.New(cfg.EmbeddingDim), nil

	case ExtractorTypeFaceNet, "":
		return createFaceNetExtractor(ctx, cfg)

	default:
		return nil, fmt.Errorf("unknown extractor type: %s (supported: %s, %s)",
			cfg.ExtractorType, ExtractorTypeFaceNet, ExtractorTypeMock)
	}
}

func createFaceNetExtractor(ctx context.Context, cfg *config.Config) (extractor.Extractor, error) {
	fnConfig := facenet.DefaultConfig()
	if cfg.FaceNetURL != "" {
		fnConfig.BaseURL = cfg.FaceNetURL
	}

	ext, err := facenet.NewWithProbe(ctx, fnConfig, cfg.EmbeddingDim)
	if err != nil {
		return nil, fmt.Errorf("create facenet extractor: %w", err)
	}

	return ext, nil
}
