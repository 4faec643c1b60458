// Package resolver implements the orchestrating resolution chain: alias
// normalization, fuzzy memory recall, the system command handler, web
// search under a deadline, the trained policy, and finally the teaching
// prompt. The first step that produces an answer wins and the outcome is
// appended to the interaction log with a neutral reward.
//
// Failures inside an individual step are caught at that step and converted
// into a miss so the chain proceeds; nothing in the chain can terminate the
// hosting process. Only persistence failures of a direct user teaching
// surface to the caller.
//
// Feedback: callers report explicit thumbs up/down through RecordFeedback.
// When no explicit signal arrives within the feedback window after an
// answer, an implicit positive reward is recorded instead (a timer-based
// fallback, not a retry).
package resolver
