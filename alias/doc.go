// Package alias contains the concrete AliasStore implementation. The store
// interface resides in the core package. Import github.com/hupe1980/attune/core
// and depend on core.AliasStore in your code; select an implementation (like
// the file-backed store below) at wiring time.
//
// Aliases exist to absorb mishearings and shortforms: once "whats the time"
// has been linked to "what time is it", normalization rewrites the former to
// the latter before the rest of the resolver chain runs.
package alias
