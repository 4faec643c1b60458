package embedding

import (
	"context"
	"fmt"

	"github.com/hupe1980/attune/core"
	"github.com/openai/openai-go"
)

// OpenAIOptions configures construction of an OpenAIEmbedder.
// Fields mirror a subset of the Embeddings API parameters intentionally kept
// minimal; extend via functional options without breaking callers.
type OpenAIOptions struct {
	// Model is the embedding model. Defaults to text-embedding-3-small.
	Model string
	// Dim is the dimensionality to request and report. Defaults to 1536
	// (the text-embedding-3-small native size).
	Dim int
}

// OpenAIEmbedder produces embeddings via the OpenAI Embeddings API using the
// official client.
type OpenAIEmbedder struct {
	client *openai.Client
	opts   OpenAIOptions
}

// Interface compliance (compile-time assertion)
var _ core.Embedder = (*OpenAIEmbedder)(nil)

// NewOpenAIEmbedder creates a new OpenAI embedder using the official client
// (API key read from the environment).
func NewOpenAIEmbedder(optFns ...func(o *OpenAIOptions)) *OpenAIEmbedder {
	client := openai.NewClient()
	return NewOpenAIEmbedderFromClient(&client, optFns...)
}

// NewOpenAIEmbedderFromClient creates a new OpenAI embedder from an existing
// client.
func NewOpenAIEmbedderFromClient(client *openai.Client, optFns ...func(o *OpenAIOptions)) *OpenAIEmbedder {
	opts := OpenAIOptions{
		Model: openai.EmbeddingModelTextEmbedding3Small,
		Dim:   1536,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &OpenAIEmbedder{client: client, opts: opts}
}

// Dim returns the configured vector size.
func (e *OpenAIEmbedder) Dim() int { return e.opts.Dim }

// Embed encodes text via the Embeddings API, requesting the configured
// dimensionality so snapshots stay comparable across model revisions.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model:      e.opts.Model,
		Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: []string{text}},
		Dimensions: openai.Int(int64(e.opts.Dim)),
	})
	if err != nil {
		return nil, fmt.Errorf("openai embed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai embed: empty response for model %s", e.opts.Model)
	}

	raw := resp.Data[0].Embedding
	vec := make([]float32, len(raw))
	for i, v := range raw {
		vec[i] = float32(v)
	}
	return vec, nil
}
