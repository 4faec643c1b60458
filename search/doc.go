// Package search contains the web search collaborator used as a fallback in
// the resolver chain. The Searcher interface resides in the core package.
//
// The DuckDuckGo implementation queries the Instant Answer API and extracts
// the first usable field in a fixed order (Answer, Definition, Abstract,
// then related topic texts), trimming the result to a couple of sentences
// so it stays speakable. A query with no usable field yields
// core.ErrNoAnswer so the chain can continue instead of presenting a
// placeholder.
package search
