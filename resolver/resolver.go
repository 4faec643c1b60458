package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/logging"
)

const (
	// DefaultRecallThreshold is the fuzzy score a memory key must reach.
	DefaultRecallThreshold = 85
	// DefaultSearchTimeout bounds the web search step so a stalled request
	// fails over to the next step instead of stalling the chain.
	DefaultSearchTimeout = 5 * time.Second
	// DefaultFeedbackWindow is how long to wait for explicit feedback
	// before recording an implicit positive reward.
	DefaultFeedbackWindow = 4 * time.Second
	// DefaultTeachPrompt is the question shown when the chain is exhausted.
	DefaultTeachPrompt = "Can you please tell me what it means so I can remember?"
	// DefaultTeachAck acknowledges a successful teaching.
	DefaultTeachAck = "Thanks! I'll remember that."
)

// Options configures construction of a Resolver.
type Options struct {
	// RecallThreshold is the minimum fuzzy score for a memory hit.
	RecallThreshold int
	// SearchTimeout bounds each web search call.
	SearchTimeout time.Duration
	// FeedbackWindow delays the implicit positive reward. Zero disables
	// implicit rewards entirely.
	FeedbackWindow time.Duration
	// TeachPrompt and TeachAck customize the teaching dialogue.
	TeachPrompt string
	TeachAck    string

	// Optional chain steps. A nil collaborator is skipped.
	System    core.SystemHandler
	Searcher  core.Searcher
	Predictor core.Predictor
	Prompter  core.Prompter

	// Logger defaults to NoOp.
	Logger logging.Logger
}

// Resolver runs utterances through the escalating fallback chain and records
// every outcome. Public methods are safe for concurrent use; the file-backed
// stores serialize their own writes.
type Resolver struct {
	aliases core.AliasStore
	memory  core.MemoryStore
	log     core.InteractionLog

	system    core.SystemHandler
	searcher  core.Searcher
	predictor core.Predictor
	prompter  core.Prompter

	recallThreshold int
	searchTimeout   time.Duration
	teachPrompt     string
	teachAck        string

	feedback *feedbackTracker
	logger   logging.Logger
}

// New constructs a Resolver over the three stores with optional overrides.
func New(aliases core.AliasStore, memory core.MemoryStore, log core.InteractionLog, optFns ...func(o *Options)) *Resolver {
	opts := Options{
		RecallThreshold: DefaultRecallThreshold,
		SearchTimeout:   DefaultSearchTimeout,
		FeedbackWindow:  DefaultFeedbackWindow,
		TeachPrompt:     DefaultTeachPrompt,
		TeachAck:        DefaultTeachAck,
		Logger:          logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Resolver{
		aliases:         aliases,
		memory:          memory,
		log:             log,
		system:          opts.System,
		searcher:        opts.Searcher,
		predictor:       opts.Predictor,
		prompter:        opts.Prompter,
		recallThreshold: opts.RecallThreshold,
		searchTimeout:   opts.SearchTimeout,
		teachPrompt:     opts.TeachPrompt,
		teachAck:        opts.TeachAck,
		feedback:        newFeedbackTracker(log, opts.FeedbackWindow, opts.Logger),
		logger:          opts.Logger,
	}
}

// Resolve runs input through the chain until a step answers. The original
// input (not the normalized form) keys the interaction record so feedback
// and retraining see what the user actually said.
//
// Errors are returned only for a failed teaching interaction; every other
// step failure is logged and treated as a miss.
func (r *Resolver) Resolve(ctx context.Context, input string) (core.Resolution, error) {
	start := time.Now()

	canonical := r.aliases.Normalize(input)

	if res, ok := r.tryMemory(input, canonical); ok {
		return r.answered(start, res), nil
	}
	if res, ok := r.trySystem(ctx, input, canonical); ok {
		return r.answered(start, res), nil
	}
	if res, ok := r.trySearch(ctx, input, canonical); ok {
		return r.answered(start, res), nil
	}
	if res, ok := r.tryPredictor(ctx, input, canonical); ok {
		return r.answered(start, res), nil
	}

	res, err := r.teachInteractively(ctx, input, canonical)
	if err != nil {
		return core.Resolution{}, err
	}
	return r.answered(start, res), nil
}

// RecordFeedback retroactively logs a reward-bearing record for a response
// that was already shown. An explicit signal cancels the pending implicit
// positive for the same state/action pair.
func (r *Resolver) RecordFeedback(state, action string, reward core.Reward) error {
	if !reward.Valid() {
		return fmt.Errorf("invalid reward %d: must be -1, 0 or 1", reward)
	}
	r.feedback.resolve(state, action)
	if err := r.log.Append(state, action, reward); err != nil {
		return fmt.Errorf("record feedback: %w", err)
	}
	return nil
}

// Teach stores an answer directly, bypassing the chain. Used by frontends
// that offer a manual "remember this" affordance.
func (r *Resolver) Teach(query, answer string) error {
	if err := r.memory.Teach(query, answer); err != nil {
		return fmt.Errorf("teach: %w", err)
	}
	return nil
}

// Close cancels all pending implicit-feedback timers.
func (r *Resolver) Close() {
	r.feedback.stop()
}

func (r *Resolver) tryMemory(input, canonical string) (core.Resolution, bool) {
	answer, ok, err := r.memory.Recall(canonical, r.recallThreshold)
	if err != nil {
		r.logger.Warn("memory recall failed, continuing chain", "error", err)
		return core.Resolution{}, false
	}
	if !ok && canonical != input {
		// Teaching records the taught phrase as an alias of its own answer,
		// so the canonical form of a taught phrase is the answer text and
		// misses the memory key. Falling back to the raw input keeps taught
		// phrases recallable.
		answer, ok, err = r.memory.Recall(input, r.recallThreshold)
		if err != nil {
			r.logger.Warn("memory recall failed, continuing chain", "error", err)
			return core.Resolution{}, false
		}
	}
	if !ok {
		return core.Resolution{}, false
	}
	return core.Resolution{Input: input, Text: answer, Source: core.SourceMemory}, true
}

func (r *Resolver) trySystem(ctx context.Context, input, canonical string) (core.Resolution, bool) {
	if r.system == nil {
		return core.Resolution{}, false
	}
	reply, handled := r.system.Handle(ctx, canonical)
	if !handled {
		return core.Resolution{}, false
	}
	return core.Resolution{Input: input, Text: reply, Source: core.SourceSystem}, true
}

func (r *Resolver) trySearch(ctx context.Context, input, canonical string) (core.Resolution, bool) {
	if r.searcher == nil {
		return core.Resolution{}, false
	}

	sctx, cancel := context.WithTimeout(ctx, r.searchTimeout)
	defer cancel()

	text, err := r.searcher.Search(sctx, canonical)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNoAnswer):
			// A clean miss; nothing to log.
		case errors.Is(err, context.DeadlineExceeded):
			r.logger.Warn("web search timed out, continuing chain", "timeout", r.searchTimeout)
		default:
			r.logger.Warn("web search failed, continuing chain", "error", err)
		}
		return core.Resolution{}, false
	}
	return core.Resolution{Input: input, Text: text, Source: core.SourceSearch}, true
}

func (r *Resolver) tryPredictor(ctx context.Context, input, canonical string) (core.Resolution, bool) {
	if r.predictor == nil {
		return core.Resolution{}, false
	}
	text, err := r.predictor.Predict(ctx, canonical)
	if err != nil {
		if !errors.Is(err, core.ErrModelUnavailable) {
			r.logger.Warn("policy prediction failed, continuing chain", "error", err)
		}
		return core.Resolution{}, false
	}
	return core.Resolution{Input: input, Text: text, Source: core.SourcePolicy}, true
}

// teachInteractively solicits an answer from the user, stores it, and
// answers with the acknowledgement. Teaching persistence failures surface:
// they are direct user-initiated writes the user expects to succeed.
func (r *Resolver) teachInteractively(ctx context.Context, input, canonical string) (core.Resolution, error) {
	if r.prompter == nil {
		return core.Resolution{}, core.ErrNeedsTeaching
	}

	answer, err := r.prompter.Prompt(ctx, r.teachPrompt)
	if err != nil {
		return core.Resolution{}, fmt.Errorf("teaching prompt: %w", err)
	}
	if err := r.memory.Teach(canonical, answer); err != nil {
		return core.Resolution{}, fmt.Errorf("store taught answer: %w", err)
	}
	return core.Resolution{Input: input, Text: r.teachAck, Source: core.SourceTaught}, nil
}

// answered records the outcome (neutral reward, feedback timer) and logs it.
func (r *Resolver) answered(start time.Time, res core.Resolution) core.Resolution {
	if err := r.log.Append(res.Input, res.Text, core.RewardNeutral); err != nil {
		r.logger.Warn("failed to append interaction record", "error", err)
	}
	r.feedback.schedule(res.Input, res.Text)

	r.logger.Debug("resolution completed",
		"input", res.Input,
		"source", string(res.Source),
		"duration", time.Since(start),
	)
	return res
}
