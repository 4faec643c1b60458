package system

import (
	"context"
	"strings"
	"time"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/internal/util"
)

// HandlerFunc handles a single normalized command, reporting handled=false
// for inputs it does not recognize.
type HandlerFunc func(ctx context.Context, command string) (reply string, handled bool)

// Options configures construction of a Registry.
type Options struct {
	// Clock supplies the current time for the built-in handlers. Defaults
	// to time.Now; tests inject a fixed clock.
	Clock func() time.Time
	// DisableBuiltins skips registration of the clock/date handlers.
	DisableBuiltins bool
}

// Registry implements core.SystemHandler by delegating to an ordered list
// of HandlerFuncs.
type Registry struct {
	handlers []HandlerFunc
}

// Interface compliance (compile-time assertion)
var _ core.SystemHandler = (*Registry)(nil)

// NewRegistry creates a Registry with the portable built-in handlers.
func NewRegistry(optFns ...func(o *Options)) *Registry {
	opts := Options{Clock: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}

	r := &Registry{}
	if !opts.DisableBuiltins {
		r.Register(clockHandler(opts.Clock))
		r.Register(dateHandler(opts.Clock))
	}
	return r
}

// Register appends a handler. Later registrations run after earlier ones.
func (r *Registry) Register(fn HandlerFunc) {
	r.handlers = append(r.handlers, fn)
}

// Handle normalizes the command and runs it through the registered handlers
// in order, returning the first reply.
func (r *Registry) Handle(ctx context.Context, command string) (string, bool) {
	cmd := util.NormalizePhrase(command)
	for _, fn := range r.handlers {
		if reply, ok := fn(ctx, cmd); ok {
			return reply, true
		}
	}
	return "", false
}

// clockHandler answers any command mentioning "time" with the current
// wall-clock time.
func clockHandler(clock func() time.Time) HandlerFunc {
	return func(_ context.Context, cmd string) (string, bool) {
		if !strings.Contains(cmd, "time") {
			return "", false
		}
		return "The current time is " + clock().Format("03:04 PM") + ".", true
	}
}

// dateHandler answers commands mentioning "date" or "what day" with the
// current date.
func dateHandler(clock func() time.Time) HandlerFunc {
	return func(_ context.Context, cmd string) (string, bool) {
		if !strings.Contains(cmd, "date") && !strings.Contains(cmd, "what day") {
			return "", false
		}
		return "Today is " + clock().Format("Monday, January 2") + ".", true
	}
}
