package policy

import (
	"sort"

	"github.com/hupe1980/attune/core"
)

// Vocabulary binds every distinct action string to a stable integer index.
// The order is lexicographic, never map iteration order, so rebuilding the
// vocabulary from the same records always yields the same mapping.
type Vocabulary struct {
	actions []string
	index   map[string]int
}

// BuildVocabulary collects the distinct action strings from records and
// assigns indices in sorted order.
func BuildVocabulary(records []core.InteractionRecord) *Vocabulary {
	seen := map[string]struct{}{}
	for _, r := range records {
		seen[r.Action] = struct{}{}
	}
	actions := make([]string, 0, len(seen))
	for a := range seen {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return NewVocabulary(actions)
}

// NewVocabulary builds a Vocabulary from an already-ordered action list,
// e.g. one loaded from a snapshot. The given order is preserved as-is.
func NewVocabulary(actions []string) *Vocabulary {
	index := make(map[string]int, len(actions))
	for i, a := range actions {
		index[a] = i
	}
	return &Vocabulary{actions: actions, index: index}
}

// Len returns the number of actions.
func (v *Vocabulary) Len() int { return len(v.actions) }

// Action returns the action text bound to index i, or ok=false when i is
// out of range.
func (v *Vocabulary) Action(i int) (string, bool) {
	if i < 0 || i >= len(v.actions) {
		return "", false
	}
	return v.actions[i], true
}

// Index returns the index bound to an action text.
func (v *Vocabulary) Index(action string) (int, bool) {
	i, ok := v.index[action]
	return i, ok
}

// Actions returns a defensive copy of the ordered action list.
func (v *Vocabulary) Actions() []string {
	out := make([]string, len(v.actions))
	copy(out, v.actions)
	return out
}

// Equal reports whether both vocabularies bind the same actions to the same
// indices.
func (v *Vocabulary) Equal(other *Vocabulary) bool {
	if other == nil || len(v.actions) != len(other.actions) {
		return false
	}
	for i, a := range v.actions {
		if other.actions[i] != a {
			return false
		}
	}
	return true
}
