package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingEmbedder_Deterministic(t *testing.T) {
	e := NewHashingEmbedder()
	ctx := context.Background()

	a, err := e.Embed(ctx, "what time is it")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "what time is it")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, DefaultHashingDim)
}

func TestHashingEmbedder_DistinctInputsDiffer(t *testing.T) {
	e := NewHashingEmbedder()
	ctx := context.Background()

	a, err := e.Embed(ctx, "good morning")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "open the browser")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashingEmbedder_Normalized(t *testing.T) {
	e := NewHashingEmbedder(func(o *HashingOptions) { o.Dim = 64 })

	vec, err := e.Embed(context.Background(), "the quick brown fox jumps over the lazy dog")
	require.NoError(t, err)
	require.Len(t, vec, 64)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}

func TestHashingEmbedder_EmptyInput(t *testing.T) {
	e := NewHashingEmbedder(func(o *HashingOptions) { o.Dim = 16 })

	vec, err := e.Embed(context.Background(), "")
	require.NoError(t, err)

	for _, v := range vec {
		assert.Zero(t, v)
	}
}
