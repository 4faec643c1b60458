// Package attune provides a high-level façade over the resolution-and-
// learning loop: alias normalization, fuzzy long-term memory, structured
// interaction logging with reward signals, triggered policy retraining and
// policy-based fallback prediction. Most applications interact with this
// package by:
//  1. Creating an Attune via New() (optionally overriding stores, embedder
//     and collaborators)
//  2. Resolving utterances with Resolve and reporting feedback with
//     RecordFeedback
//  3. Optionally teaching answers directly with Teach
//
// The façade delegates orchestration to resolver.Resolver while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development: flat JSON files under the data directory, a deterministic
// local embedder, the built-in system command registry and DuckDuckGo
// search. Production deployments typically supply a structured logger and a
// semantic embedding backend.
package attune

import (
	"context"
	"path/filepath"
	"time"

	"github.com/hupe1980/attune/alias"
	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/embedding"
	"github.com/hupe1980/attune/interaction"
	"github.com/hupe1980/attune/logging"
	"github.com/hupe1980/attune/memory"
	"github.com/hupe1980/attune/policy"
	"github.com/hupe1980/attune/resolver"
	"github.com/hupe1980/attune/search"
	"github.com/hupe1980/attune/system"
)

// Options configures the Attune instance.
type Options struct {
	// DataDir is where the store files live. Individual paths below
	// override the derived defaults.
	DataDir         string
	AliasPath       string
	MemoryPath      string
	InteractionPath string
	PolicyPath      string

	// RecallThreshold is the minimum fuzzy score for a memory hit.
	RecallThreshold int
	// BatchSize controls how many log appends separate training triggers.
	BatchSize int
	// FeedbackWindow delays the implicit positive reward; zero disables it.
	FeedbackWindow time.Duration
	// SearchTimeout bounds each web search call.
	SearchTimeout time.Duration

	// Embedder encodes utterances for the policy. Defaults to the local
	// hashing embedder so no network or model download is required.
	Embedder core.Embedder
	// System handles local commands. Defaults to the built-in registry
	// (clock/date). Set to nil to skip the step entirely.
	System core.SystemHandler
	// Searcher answers from the web. Defaults to DuckDuckGo. Set to nil to
	// run fully offline.
	Searcher core.Searcher
	// Prompter solicits taught answers. Nil (the default) makes Resolve
	// return core.ErrNeedsTeaching when the chain is exhausted.
	Prompter core.Prompter

	// Logger defaults to NoOp.
	Logger logging.Logger
}

// Attune is the high-level façade aggregating the stores, the trainer and
// the resolver chain.
type Attune struct {
	aliases   *alias.FileStore
	memory    *memory.FileStore
	log       *interaction.FileLog
	trainer   *policy.Trainer
	predictor *policy.Predictor
	resolver  *resolver.Resolver

	cancel context.CancelFunc
	logger logging.Logger
}

// New creates a new Attune instance with optional overrides. The training
// worker starts immediately and runs until Close.
func New(optFns ...func(o *Options)) *Attune {
	opts := Options{
		DataDir:         "data",
		RecallThreshold: resolver.DefaultRecallThreshold,
		BatchSize:       interaction.DefaultBatchSize,
		FeedbackWindow:  resolver.DefaultFeedbackWindow,
		SearchTimeout:   resolver.DefaultSearchTimeout,
		Logger:          logging.NoOpLogger{},
	}
	opts.System = system.NewRegistry()
	opts.Searcher = search.NewDuckDuckGo()

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Embedder == nil {
		opts.Embedder = embedding.NewHashingEmbedder()
	}
	if opts.AliasPath == "" {
		opts.AliasPath = filepath.Join(opts.DataDir, "aliases.json")
	}
	if opts.MemoryPath == "" {
		opts.MemoryPath = filepath.Join(opts.DataDir, "memory.json")
	}
	if opts.InteractionPath == "" {
		opts.InteractionPath = filepath.Join(opts.DataDir, "interactions.json")
	}
	if opts.PolicyPath == "" {
		opts.PolicyPath = filepath.Join(opts.DataDir, "policy.json")
	}

	aliases := alias.NewFileStore(opts.AliasPath, func(o *alias.Options) {
		o.Logger = opts.Logger
	})
	mem := memory.NewFileStore(opts.MemoryPath, func(o *memory.Options) {
		o.Logger = opts.Logger
		o.Aliases = aliases
	})

	// The log's batch trigger kicks the trainer; the trainer reads the log.
	// The closure breaks the construction cycle.
	var trainer *policy.Trainer
	log := interaction.NewFileLog(opts.InteractionPath, func(o *interaction.Options) {
		o.BatchSize = opts.BatchSize
		o.Logger = opts.Logger
		o.Trigger = func(total int) { trainer.Kick(total) }
	})
	trainer = policy.NewTrainer(log, opts.Embedder, opts.PolicyPath, func(o *policy.TrainerOptions) {
		o.Logger = opts.Logger
	})
	predictor := policy.NewPredictor(opts.PolicyPath, opts.Embedder, func(o *policy.PredictorOptions) {
		o.Logger = opts.Logger
	})

	res := resolver.New(aliases, mem, log, func(o *resolver.Options) {
		o.RecallThreshold = opts.RecallThreshold
		o.SearchTimeout = opts.SearchTimeout
		o.FeedbackWindow = opts.FeedbackWindow
		o.System = opts.System
		o.Searcher = opts.Searcher
		o.Predictor = predictor
		o.Prompter = opts.Prompter
		o.Logger = opts.Logger
	})

	ctx, cancel := context.WithCancel(context.Background())
	trainer.Start(ctx)

	return &Attune{
		aliases:   aliases,
		memory:    mem,
		log:       log,
		trainer:   trainer,
		predictor: predictor,
		resolver:  res,
		cancel:    cancel,
		logger:    opts.Logger,
	}
}

// Resolve runs an utterance through the resolution chain.
func (a *Attune) Resolve(ctx context.Context, input string) (core.Resolution, error) {
	return a.resolver.Resolve(ctx, input)
}

// RecordFeedback logs an explicit reward for a previously shown response.
func (a *Attune) RecordFeedback(state, action string, reward core.Reward) error {
	return a.resolver.RecordFeedback(state, action, reward)
}

// Teach stores an answer directly, bypassing the chain.
func (a *Attune) Teach(query, answer string) error {
	return a.resolver.Teach(query, answer)
}

// Train forces a full synchronous training run, independent of the batch
// trigger. Useful for CLIs and tests.
func (a *Attune) Train(ctx context.Context) error {
	return a.trainer.Train(ctx)
}

// Aliases exposes the alias store for frontends.
func (a *Attune) Aliases() core.AliasStore { return a.aliases }

// Memory exposes the taught memory store for frontends.
func (a *Attune) Memory() core.MemoryStore { return a.memory }

// Interactions exposes the interaction log for frontends.
func (a *Attune) Interactions() core.InteractionLog { return a.log }

// Close stops the training worker and cancels pending feedback timers.
func (a *Attune) Close() {
	a.cancel()
	a.resolver.Close()
}
