package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/attune/core"
)

func recordsWithActions(actions ...string) []core.InteractionRecord {
	out := make([]core.InteractionRecord, 0, len(actions))
	for _, a := range actions {
		out = append(out, core.NewInteractionRecord("state", a, core.RewardNeutral))
	}
	return out
}

func TestBuildVocabulary_SortedAndDeduplicated(t *testing.T) {
	v := BuildVocabulary(recordsWithActions("zebra", "apple", "mango", "apple"))

	assert.Equal(t, []string{"apple", "mango", "zebra"}, v.Actions())
	assert.Equal(t, 3, v.Len())
}

func TestBuildVocabulary_DeterministicAcrossOrderings(t *testing.T) {
	a := BuildVocabulary(recordsWithActions("one", "two", "three"))
	b := BuildVocabulary(recordsWithActions("three", "one", "two", "one"))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Actions(), b.Actions())
}

func TestVocabulary_ActionAndIndex(t *testing.T) {
	v := NewVocabulary([]string{"a", "b", "c"})

	action, ok := v.Action(1)
	assert.True(t, ok)
	assert.Equal(t, "b", action)

	idx, ok := v.Index("c")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = v.Action(3)
	assert.False(t, ok)
	_, ok = v.Action(-1)
	assert.False(t, ok)
	_, ok = v.Index("missing")
	assert.False(t, ok)
}

func TestVocabulary_Equal(t *testing.T) {
	a := NewVocabulary([]string{"x", "y"})

	assert.True(t, a.Equal(NewVocabulary([]string{"x", "y"})))
	assert.False(t, a.Equal(NewVocabulary([]string{"y", "x"})))
	assert.False(t, a.Equal(NewVocabulary([]string{"x"})))
	assert.False(t, a.Equal(nil))
}
