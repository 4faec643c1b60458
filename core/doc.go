// Package core defines the domain contracts shared across Attune: the
// resolution result types, the interaction record that feeds policy training,
// the persistent store interfaces (alias, memory, interaction log) and the
// narrow collaborator interfaces (embedder, system handler, searcher,
// prompter, predictor) that concrete packages implement.
//
// Keeping contracts centralized avoids dependency cycles between the
// orchestrating resolver and the pluggable backends: depend on core.* in
// your code and select implementations at wiring time.
package core
