package memory

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// ratio scores the similarity of two strings on a 0–100 scale derived from
// their Levenshtein distance: 100 means identical, 0 means nothing in
// common. Both inputs are expected to be normalized already.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}
