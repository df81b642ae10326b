// Package similarity holds the pure numeric matching primitives. It performs
// no I/O so it can be swapped under an indexed nearest-neighbor structure
// without touching the services that rank with it.
package similarity

import (
	"math"
)

// Cosine calculates the cosine similarity between two embedding vectors.
// Returns a value between -1.0 (opposite) and 1.0 (identical). Callers treat
// the result as a ranking score, not a probability.
//
// A zero vector can never be a match: if either norm is exactly zero the
// result is 0.0 instead of a division by zero. Mismatched lengths also
// yield 0.0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Normalize scales an embedding to unit length. Zero vectors are returned
// unchanged.
func Normalize(embedding []float64) []float64 {
	if len(embedding) == 0 {
		return embedding
	}

	var norm float64
	for _, v := range embedding {
		norm += v * v
	}

	if norm == 0 {
		return embedding
	}

	norm = math.Sqrt(norm)
	normalized := make([]float64, len(embedding))
	for i, v := range embedding {
		normalized[i] = v / norm
	}

	return normalized
}
