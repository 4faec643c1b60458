// Package testutil contains fake collaborators used across tests: scripted
// prompters, canned searchers and embedders with fixed outputs. They keep
// resolver and policy tests hermetic. Not intended for production usage.
package testutil
