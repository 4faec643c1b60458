package core

// AliasStore maps misheard or shortform phrases to canonical phrases.
//
// Contract:
//   - Normalize is side-effect free and idempotent: normalizing an already
//     canonical phrase returns it unchanged
//   - Learn inserts or overwrites heard→canonical and persists immediately;
//     it is a no-op when the two compare equal case-insensitively
//   - implementations tolerate a missing backing file by starting empty.
type AliasStore interface {
	Normalize(text string) string
	Learn(heard, canonical string) error
}

// MemoryStore is the taught long-term memory: canonical command phrases
// mapped to free-text answers, queried by fuzzy similarity.
//
// Contract:
//   - Recall scores the lowercased, trimmed query against every stored key
//     on a 0–100 edit-distance-ratio scale and returns the answer for the
//     strictly-highest score meeting the threshold; ties break toward the
//     first-encountered key in stored order
//   - Teach lowercases the query, overwrites any prior answer for it, and
//     persists before returning. Teaching failures surface to the caller
//     since they are direct user-initiated writes.
type MemoryStore interface {
	Recall(query string, threshold int) (answer string, ok bool, err error)
	Teach(query, answer string) error
}

// InteractionLog is the append-only record of resolution outcomes.
//
// Contract:
//   - Append creates a timestamped record and persists it; concurrent
//     appends are serialized so none are lost
//   - Records returns records in insertion order
//   - Len reports the current record count.
type InteractionLog interface {
	Append(state, action string, reward Reward) error
	Records() ([]InteractionRecord, error)
	Len() (int, error)
}
