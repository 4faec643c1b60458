package resolver

import (
	"sync"
	"time"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/logging"
)

// feedbackTracker owns the implicit-reward timers: one per outstanding
// (state, action) pair. When the window elapses without explicit feedback a
// positive record is appended; an explicit signal cancels the timer first.
type feedbackTracker struct {
	log    core.InteractionLog
	window time.Duration
	logger logging.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
	stopped bool
}

func newFeedbackTracker(log core.InteractionLog, window time.Duration, logger logging.Logger) *feedbackTracker {
	return &feedbackTracker{
		log:     log,
		window:  window,
		logger:  logger,
		pending: map[string]*time.Timer{},
	}
}

// feedbackKey separates state and action with a byte that cannot occur in
// either, so "ab"+"c" and "a"+"bc" never collide.
func feedbackKey(state, action string) string {
	return state + "\x00" + action
}

// schedule arms the implicit-positive timer for a freshly shown response,
// replacing any timer already pending for the same pair.
func (f *feedbackTracker) schedule(state, action string) {
	if f.window <= 0 {
		return
	}

	key := feedbackKey(state, action)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopped {
		return
	}
	if t, ok := f.pending[key]; ok {
		t.Stop()
	}
	f.pending[key] = time.AfterFunc(f.window, func() {
		f.fire(key, state, action)
	})
}

// resolve cancels the pending timer for a pair, reporting whether one was
// armed. Called when explicit feedback arrives.
func (f *feedbackTracker) resolve(state, action string) bool {
	key := feedbackKey(state, action)

	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.pending[key]
	if !ok {
		return false
	}
	delete(f.pending, key)
	return t.Stop()
}

// fire appends the implicit positive reward after the window elapsed.
func (f *feedbackTracker) fire(key, state, action string) {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	delete(f.pending, key)
	f.mu.Unlock()

	if err := f.log.Append(state, action, core.RewardPositive); err != nil {
		f.logger.Warn("failed to append implicit positive reward", "error", err)
	}
}

// stop cancels every pending timer. Further schedules are ignored.
func (f *feedbackTracker) stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopped = true
	for key, t := range f.pending {
		t.Stop()
		delete(f.pending, key)
	}
}
