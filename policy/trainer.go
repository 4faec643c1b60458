package policy

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/logging"
)

// TrainerOptions configures construction of a Trainer.
type TrainerOptions struct {
	// Steps is the number of bandit episodes per training run. Defaults to
	// 2000.
	Steps int
	// LearningRate scales the policy gradient step. Defaults to 0.1.
	LearningRate float64
	// Seed fixes the episode sampling sequence; 0 seeds from the clock.
	Seed int64
	// Logger receives per-run diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Trainer builds and refreshes the policy snapshot from the interaction log.
//
// Concurrency: at most one training run is in flight; Train returns
// immediately when another run holds the slot, and Kick never blocks. The
// trainer is safe to share between the interaction log's batch trigger and
// manual invocations.
type Trainer struct {
	log          core.InteractionLog
	embedder     core.Embedder
	snapshotPath string

	steps        int
	learningRate float64
	seed         int64
	logger       logging.Logger

	slot *semaphore.Weighted
	kick chan struct{}
}

// NewTrainer creates a Trainer writing snapshots to snapshotPath.
func NewTrainer(log core.InteractionLog, embedder core.Embedder, snapshotPath string, optFns ...func(o *TrainerOptions)) *Trainer {
	opts := TrainerOptions{
		Steps:        2000,
		LearningRate: 0.1,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Trainer{
		log:          log,
		embedder:     embedder,
		snapshotPath: snapshotPath,
		steps:        opts.Steps,
		learningRate: opts.LearningRate,
		seed:         opts.Seed,
		logger:       opts.Logger,
		slot:         semaphore.NewWeighted(1),
		kick:         make(chan struct{}, 1),
	}
}

// Kick requests a training run without blocking. Requests arriving while a
// run is queued or active collapse into the pending one.
func (t *Trainer) Kick(int) {
	select {
	case t.kick <- struct{}{}:
	default:
	}
}

// Start launches the background worker that serves Kick requests. It
// returns immediately; the worker exits when ctx is cancelled. Training
// failures are logged and swallowed here because retraining is best-effort:
// the previous snapshot keeps serving predictions.
func (t *Trainer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.kick:
				if err := t.Train(ctx); err != nil {
					t.logger.Error("policy training failed", "error", err)
				}
			}
		}
	}()
}

// Train runs one full training pass: load the log, rebuild the vocabulary,
// embed every distinct state, run bandit episodes, and atomically replace
// the snapshot. An empty or unreadable log is not an error; the run just
// logs and returns. When another run is already in flight Train returns nil
// immediately.
func (t *Trainer) Train(ctx context.Context) error {
	if !t.slot.TryAcquire(1) {
		t.logger.Debug("training already in flight, skipping trigger")
		return nil
	}
	defer t.slot.Release(1)

	start := time.Now()

	records, err := t.log.Records()
	if err != nil {
		t.logger.Warn("interaction log unreadable, skipping training", "error", err)
		return nil
	}
	if len(records) == 0 {
		t.logger.Info("interaction log empty, skipping training")
		return nil
	}

	vocab := BuildVocabulary(records)
	dim := t.embedder.Dim()
	model := t.warmStart(vocab, dim)

	states, err := t.embedStates(ctx, records)
	if err != nil {
		return fmt.Errorf("embed states: %w", err)
	}

	rng := t.newRNG()
	for step := 0; step < t.steps; step++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("training cancelled: %w", err)
		}

		rec := records[rng.Intn(len(records))]
		x := states[rec.State]
		probs := model.probs(x)
		action := model.sample(rng, probs)

		// Single-step episode: +1 when the sampled action reproduces the
		// logged response, -1 otherwise.
		reward := -1.0
		if text, ok := vocab.Action(action); ok && text == rec.Action {
			reward = 1.0
		}
		model.update(x, action, probs, reward, t.learningRate)
	}

	snap := newSnapshot(model, vocab, len(records))
	if err := SaveSnapshot(t.snapshotPath, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	t.logger.Info("policy trained",
		"records", len(records),
		"actions", vocab.Len(),
		"steps", t.steps,
		"duration", time.Since(start),
	)
	return nil
}

// warmStart reuses the previous snapshot's weights when the vocabulary and
// dimensionality are unchanged, otherwise starts from zero weights.
func (t *Trainer) warmStart(vocab *Vocabulary, dim int) *linearPolicy {
	snap, found, err := LoadSnapshot(t.snapshotPath)
	if err != nil {
		t.logger.Warn("previous snapshot unusable, training from scratch", "error", err)
		return newLinearPolicy(vocab.Len(), dim)
	}
	if !found || snap.Dim != dim || !vocab.Equal(NewVocabulary(snap.Actions)) {
		return newLinearPolicy(vocab.Len(), dim)
	}
	return policyFromSnapshot(snap)
}

// embedStates encodes every distinct state once and reuses the vector for
// all episodes drawn from the same record.
func (t *Trainer) embedStates(ctx context.Context, records []core.InteractionRecord) (map[string][]float64, error) {
	states := make(map[string][]float64)
	for _, rec := range records {
		if _, ok := states[rec.State]; ok {
			continue
		}
		vec, err := t.embedder.Embed(ctx, rec.State)
		if err != nil {
			return nil, fmt.Errorf("embed %q: %w", rec.State, err)
		}
		if len(vec) != t.embedder.Dim() {
			return nil, fmt.Errorf("embedder returned dim %d: want %d", len(vec), t.embedder.Dim())
		}
		states[rec.State] = toFloat64(vec)
	}
	return states, nil
}

func (t *Trainer) newRNG() *rand.Rand {
	seed := t.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
