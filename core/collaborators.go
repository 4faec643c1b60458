package core

import "context"

// Embedder encodes text into a fixed-length numeric vector. The same
// embedder (or at least the same model and dimension) must be used for both
// policy training and prediction.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	// Dim returns the embedding dimensionality the implementation produces.
	Dim() int
}

// SystemHandler executes local system commands ("what time is it", volume,
// app launching, ...). It reports handled=false for inputs it does not
// recognize so the resolver chain can continue.
type SystemHandler interface {
	Handle(ctx context.Context, command string) (reply string, handled bool)
}

// Searcher answers a query from the web. Implementations return ErrNoAnswer
// when nothing useful was found (including placeholder results) and should
// respect context cancellation; the resolver applies a deadline around every
// call.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Prompter solicits a free-text answer from the user when the chain is
// exhausted and the system needs to be taught. Console and voice frontends
// implement this differently; the resolver does not care which.
type Prompter interface {
	Prompt(ctx context.Context, question string) (string, error)
}

// Predictor queries the trained policy for a best-guess response.
// Implementations return ErrModelUnavailable while no usable snapshot
// exists (never trained, or vocabulary/version skew).
type Predictor interface {
	Predict(ctx context.Context, query string) (string, error)
}
