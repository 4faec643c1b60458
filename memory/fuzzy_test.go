package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 100, ratio("who made you", "who made you"))
	assert.Equal(t, 100, ratio("", ""))
	assert.Equal(t, 0, ratio("", "abcd"))

	// One dropped letter in a 16-rune phrase stays above the default
	// recall threshold.
	assert.GreaterOrEqual(t, ratio("what time is it", "wha time is it"), 85)

	// Unrelated phrases stay well below it.
	assert.Less(t, ratio("open the browser", "sing a song"), 50)
}

func TestRatio_Symmetric(t *testing.T) {
	assert.Equal(t, ratio("kitten", "sitting"), ratio("sitting", "kitten"))
}
