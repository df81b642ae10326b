package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmbeddingDim is the fixed length of every stored face embedding.
// The FaceNet extractor produces 512-dimension vectors; the vector column
// in Postgres is declared with the same dimension, so a mismatched length
// is a contract violation at the persistence layer.
const EmbeddingDim = 512

// Identity is an enrolled user. Records are created once by enrollment and
// never mutated afterwards; there is no update or delete path.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Embedding []float64 `json:"-"`
	// Threshold overrides the system-wide recognition threshold for this
	// identity when set. Nil means the configured default applies.
	Threshold *float64  `json:"threshold,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthDecision is the outcome of an authentication attempt that reached the
// matching stage. Rejection is a decision, not an error: Accepted is false and
// Similarity carries the best score seen, without naming the near-match.
type AuthDecision struct {
	Accepted   bool
	IdentityID uuid.UUID
	Similarity float64
}
