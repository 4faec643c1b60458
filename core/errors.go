package core

import (
	"errors"
	"fmt"
)

// ErrNoAnswer signals that a resolver step ran without failure but produced
// nothing useful; the chain proceeds to the next step.
var ErrNoAnswer = errors.New("no answer")

// ErrNeedsTeaching signals that the whole chain was exhausted and no
// Prompter is wired to solicit an answer. Interactive frontends either wire
// a Prompter or catch this and run their own teaching flow via Teach.
var ErrNeedsTeaching = errors.New("needs teaching")

// ErrModelUnavailable signals that the policy predictor has no usable
// snapshot: either training never ran, or the persisted vocabulary does not
// match the model (version skew). It is never surfaced to end users.
var ErrModelUnavailable = errors.New("policy model unavailable")

// StoreError wraps an I/O failure of a file-backed store with enough context
// to log it usefully. Stores recover from read failures by defaulting to
// empty; write failures during direct teaching surface to the caller.
type StoreError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *StoreError) Unwrap() error { return e.Err }
