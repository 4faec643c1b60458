package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/hupe1980/attune/core"
)

// ScriptedPrompter replays a fixed sequence of answers and records every
// question it was asked.
type ScriptedPrompter struct {
	mu        sync.Mutex
	answers   []string
	Questions []string
}

var _ core.Prompter = (*ScriptedPrompter)(nil)

// NewScriptedPrompter queues the given answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Prompt pops the next scripted answer. Running past the script is an error
// so tests fail loudly instead of looping.
func (p *ScriptedPrompter) Prompt(_ context.Context, question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Questions = append(p.Questions, question)
	if len(p.answers) == 0 {
		return "", errors.New("scripted prompter exhausted")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// StaticSearcher serves canned answers by exact query and records every
// query. Unknown queries miss with core.ErrNoAnswer; a non-nil Err overrides
// everything.
type StaticSearcher struct {
	Answers map[string]string
	Err     error

	mu      sync.Mutex
	Queries []string
}

var _ core.Searcher = (*StaticSearcher)(nil)

// Search implements core.Searcher.
func (s *StaticSearcher) Search(_ context.Context, query string) (string, error) {
	s.mu.Lock()
	s.Queries = append(s.Queries, query)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	if answer, ok := s.Answers[query]; ok {
		return answer, nil
	}
	return "", core.ErrNoAnswer
}

// BlockingSearcher never answers; it waits for cancellation and returns the
// context error. Used to exercise the search timeout.
type BlockingSearcher struct{}

var _ core.Searcher = (*BlockingSearcher)(nil)

// Search implements core.Searcher.
func (BlockingSearcher) Search(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// FixedEmbedder returns pre-assigned vectors by exact input text. Inputs
// without an assignment get the zero vector, which is enough to provoke
// dimension and vocabulary skew in policy tests.
type FixedEmbedder struct {
	Vectors map[string][]float32
	N       int
}

var _ core.Embedder = (*FixedEmbedder)(nil)

// Dim returns the configured dimensionality.
func (e *FixedEmbedder) Dim() int { return e.N }

// Embed implements core.Embedder.
func (e *FixedEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if vec, ok := e.Vectors[text]; ok {
		out := make([]float32, len(vec))
		copy(out, vec)
		return out, nil
	}
	return make([]float32, e.N), nil
}

// FailingEmbedder always errors, for exercising training failure paths.
type FailingEmbedder struct{ N int }

var _ core.Embedder = (*FailingEmbedder)(nil)

// Dim returns the configured dimensionality.
func (e *FailingEmbedder) Dim() int { return e.N }

// Embed implements core.Embedder.
func (e *FailingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("embedder unavailable")
}

// StaticSystem handles exactly the phrases in Replies.
type StaticSystem struct {
	Replies map[string]string
}

var _ core.SystemHandler = (*StaticSystem)(nil)

// Handle implements core.SystemHandler.
func (s *StaticSystem) Handle(_ context.Context, input string) (string, bool) {
	reply, ok := s.Replies[input]
	return reply, ok
}
