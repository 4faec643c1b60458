// Package interaction contains the concrete InteractionLog implementation:
// the append-only record of (state, action, reward) triples that forms the
// training corpus for the policy. The log interface resides in the core
// package.
//
// Every append whose resulting count is a positive multiple of the batch
// size fires the configured trigger on its own goroutine, so policy
// retraining piggybacks on log growth without ever blocking the resolution
// path.
package interaction
