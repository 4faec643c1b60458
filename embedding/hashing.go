package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/hupe1980/attune/core"
)

// DefaultHashingDim is the default vector size of the hashing embedder.
const DefaultHashingDim = 384

// HashingOptions configures construction of a HashingEmbedder.
type HashingOptions struct {
	// Dim is the vector dimensionality. Defaults to DefaultHashingDim.
	Dim int
}

// HashingEmbedder encodes text with signed feature hashing over lowercased
// word tokens: each token hashes to a bucket and a sign, the resulting
// vector is L2-normalized. Two identical strings always produce identical
// vectors, which is all the bandit policy needs to separate distinct
// utterances; semantic closeness is a bonus the heavier backends provide.
type HashingEmbedder struct {
	dim int
}

// Interface compliance (compile-time assertion)
var _ core.Embedder = (*HashingEmbedder)(nil)

// NewHashingEmbedder creates a HashingEmbedder.
func NewHashingEmbedder(optFns ...func(o *HashingOptions)) *HashingEmbedder {
	opts := HashingOptions{Dim: DefaultHashingDim}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &HashingEmbedder{dim: opts.Dim}
}

// Dim returns the configured vector size.
func (e *HashingEmbedder) Dim() int { return e.dim }

// Embed encodes text. It never fails and ignores the context; the signature
// matches core.Embedder so backends stay interchangeable.
func (e *HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		sum := h.Sum32()
		bucket := int(sum % uint32(e.dim))
		sign := float32(1)
		if sum&0x80000000 != 0 {
			sign = -1
		}
		vec[bucket] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec, nil
}
