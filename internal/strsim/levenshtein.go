// Package strsim provides the string similarity primitives used by the
// entity matching cascade: Levenshtein, Jaro, and Jaro-Winkler.
package strsim

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Distance returns the Levenshtein edit distance between a and b,
// computed over runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// LevenshteinSimilarity scores a and b on a 0-100 scale:
// round((1 - distance/maxLen) * 100). Two empty strings score 100.
func LevenshteinSimilarity(a, b string) int {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 100
	}
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round((1 - float64(d)/float64(maxLen)) * 100))
}
