// Package logging provides a minimal logging interface and adapters for Attune.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the resolver, stores and trainer use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - AttuneLogger with contextual helpers and domain specific logging for
//     resolutions, store operations and training runs
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	a := attune.New(func(o *attune.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
