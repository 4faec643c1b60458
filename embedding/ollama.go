package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hupe1980/attune/core"
	"github.com/ollama/ollama/api"
)

// OllamaOptions configures construction of an OllamaEmbedder.
type OllamaOptions struct {
	// Host is the base URL of the Ollama server. Defaults to the local
	// default port.
	Host string
	// Model is the embedding model name. Defaults to nomic-embed-text.
	Model string
	// Dim is the dimensionality the model produces. Defaults to 768
	// (nomic-embed-text).
	Dim int
	// HTTPClient overrides the HTTP client used for API calls.
	HTTPClient *http.Client
}

// OllamaEmbedder produces embeddings from a locally running Ollama server
// using the official API client.
type OllamaEmbedder struct {
	client *api.Client
	model  string
	dim    int
}

// Interface compliance (compile-time assertion)
var _ core.Embedder = (*OllamaEmbedder)(nil)

// NewOllamaEmbedder creates an OllamaEmbedder. It returns an error when the
// host URL cannot be parsed; the server itself is only contacted on Embed.
func NewOllamaEmbedder(optFns ...func(o *OllamaOptions)) (*OllamaEmbedder, error) {
	opts := OllamaOptions{
		Host:       "http://127.0.0.1:11434",
		Model:      "nomic-embed-text",
		Dim:        768,
		HTTPClient: http.DefaultClient,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	base, err := url.Parse(opts.Host)
	if err != nil {
		return nil, fmt.Errorf("parse ollama host %q: %w", opts.Host, err)
	}

	return &OllamaEmbedder{
		client: api.NewClient(base, opts.HTTPClient),
		model:  opts.Model,
		dim:    opts.Dim,
	}, nil
}

// Dim returns the configured vector size.
func (e *OllamaEmbedder) Dim() int { return e.dim }

// Embed encodes text via the Ollama embed endpoint.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.Embed(ctx, &api.EmbedRequest{Model: e.model, Input: text})
	if err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0]) == 0 {
		return nil, fmt.Errorf("ollama embed: empty embedding for model %s", e.model)
	}
	return resp.Embeddings[0], nil
}
