package extractor

import (
	"context"
	"errors"
)

// ErrNoFace reports that the image contained no usable face. It is the only
// failure an Extractor may signal for client input; anything else means the
// extractor itself misbehaved.
var ErrNoFace = errors.New("no face detected in image")

// Extractor turns raw image bytes into a fixed-dimension embedding vector.
// Implementations must not mutate the input and must not keep references to it.
type Extractor interface {
	Extract(ctx context.Context, image []byte) ([]float64, error)
}
