package policy

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/logging"
)

// PredictorOptions configures construction of a Predictor.
type PredictorOptions struct {
	// Logger receives diagnostics about unusable snapshots. Defaults to NoOp.
	Logger logging.Logger
}

// Predictor answers queries from the trained policy snapshot. It implements
// core.Predictor.
//
// Snapshots are reloaded lazily: the file's modification time is checked on
// every call and the parsed snapshot is cached until the trainer replaces
// the file. Missing, invalid or dimension-mismatched snapshots yield
// core.ErrModelUnavailable; the predictor never guesses across a skewed
// vocabulary.
type Predictor struct {
	snapshotPath string
	embedder     core.Embedder
	logger       logging.Logger

	mu       sync.Mutex
	cached   *Snapshot
	cachedAt time.Time
}

// Interface compliance (compile-time assertion)
var _ core.Predictor = (*Predictor)(nil)

// NewPredictor creates a Predictor reading snapshots from snapshotPath.
func NewPredictor(snapshotPath string, embedder core.Embedder, optFns ...func(o *PredictorOptions)) *Predictor {
	opts := PredictorOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Predictor{
		snapshotPath: snapshotPath,
		embedder:     embedder,
		logger:       opts.Logger,
	}
}

// Predict embeds the query and returns the action text the policy considers
// most likely (greedy argmax over the persisted vocabulary).
func (p *Predictor) Predict(ctx context.Context, query string) (string, error) {
	snap, err := p.snapshot()
	if err != nil {
		return "", err
	}

	if snap.Dim != p.embedder.Dim() {
		p.logger.Warn("snapshot dim does not match embedder, refusing prediction",
			"snapshot_dim", snap.Dim, "embedder_dim", p.embedder.Dim())
		return "", core.ErrModelUnavailable
	}

	vec, err := p.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}
	if len(vec) != snap.Dim {
		p.logger.Warn("embedder returned unexpected dim, refusing prediction",
			"got", len(vec), "want", snap.Dim)
		return "", core.ErrModelUnavailable
	}

	model := policyFromSnapshot(snap)
	idx := model.greedy(toFloat64(vec))

	vocab := NewVocabulary(snap.Actions)
	action, ok := vocab.Action(idx)
	if !ok {
		// Version skew: the model proposes an index the persisted
		// vocabulary does not cover. Detected, not crashed on.
		p.logger.Warn("predicted index outside vocabulary", "index", idx, "actions", vocab.Len())
		return "", core.ErrModelUnavailable
	}
	return action, nil
}

// snapshot returns the cached snapshot, reloading when the file changed.
func (p *Predictor) snapshot() (*Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	info, err := os.Stat(p.snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrModelUnavailable
		}
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}

	if p.cached != nil && info.ModTime().Equal(p.cachedAt) {
		return p.cached, nil
	}

	snap, found, err := LoadSnapshot(p.snapshotPath)
	if err != nil {
		p.logger.Warn("snapshot unusable", "path", p.snapshotPath, "error", err)
		return nil, core.ErrModelUnavailable
	}
	if !found {
		return nil, core.ErrModelUnavailable
	}

	p.cached = snap
	p.cachedAt = info.ModTime()
	return snap, nil
}
