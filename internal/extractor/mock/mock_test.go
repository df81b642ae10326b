package mock

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elifarslancelik/GARLIC-Q/internal/extractor"
)

func largeImage(prefix string) []byte {
	img := make([]byte, 2048)
	copy(img, []byte(prefix))
	return img
}

func TestExtractor_Deterministic(t *testing.T) {
	ext := New(512)
	ctx := context.Background()

	img := largeImage("same image")

	first, err := ext.Extract(ctx, img)
	require.NoError(t, err)

	second, err := ext.Extract(ctx, img)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractor_DistinctImagesDiffer(t *testing.T) {
	ext := New(512)
	ctx := context.Background()

	a, err := ext.Extract(ctx, largeImage("image a"))
	require.NoError(t, err)

	b, err := ext.Extract(ctx, largeImage("image b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestExtractor_UnitNorm(t *testing.T) {
	ext := New(512)

	embedding, err := ext.Extract(context.Background(), largeImage("any"))
	require.NoError(t, err)
	require.Len(t, embedding, 512)

	norm := 0.0
	for _, v := range embedding {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestExtractor_TinyImageHasNoFace(t *testing.T) {
	ext := New(512)

	_, err := ext.Extract(context.Background(), []byte("tiny"))
	assert.ErrorIs(t, err, extractor.ErrNoFace)
}

func TestExtractor_RespectsDimension(t *testing.T) {
	ext := New(128)

	embedding, err := ext.Extract(context.Background(), largeImage("any"))
	require.NoError(t, err)
	assert.Len(t, embedding, 128)
}
