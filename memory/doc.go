// Package memory contains the concrete MemoryStore implementation: the
// taught long-term memory mapping canonical command phrases to free-text
// answers. The store interface resides in the core package. Import
// github.com/hupe1980/attune/core and depend on core.MemoryStore in your
// code; select an implementation (like the file-backed store below) at
// wiring time.
//
// Recall is fuzzy: queries are scored against every stored key on a 0–100
// edit-distance-ratio scale so minor phrasing or transcription differences
// still hit. Entries are kept in insertion order, which fixes the tie-break
// for equal scores and keeps recall deterministic.
package memory
