package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhrase(t *testing.T) {
	assert.Equal(t, "what time is it", NormalizePhrase("  What TIME is it "))
	assert.Equal(t, "", NormalizePhrase("   "))
	assert.Equal(t, "already normal", NormalizePhrase("already normal"))
}

func TestNormalizePhrase_Idempotent(t *testing.T) {
	inputs := []string{"Hello World", "  MiXeD  ", "", "x"}
	for _, in := range inputs {
		once := NormalizePhrase(in)
		assert.Equal(t, once, NormalizePhrase(once))
	}
}

func TestTrimSentences(t *testing.T) {
	assert.Equal(t, "One. Two.", TrimSentences("One. Two. Three. Four.", 2))
	assert.Equal(t, "Only one.", TrimSentences("Only one.", 2))
	assert.Equal(t, "No trailing period.", TrimSentences("No trailing period", 2))
	assert.Equal(t, "", TrimSentences("", 2))
	assert.Equal(t, "", TrimSentences("  ...  ", 2))
}
