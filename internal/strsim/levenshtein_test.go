package strsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinSimilarity_Identical(t *testing.T) {
	assert.Equal(t, 100, LevenshteinSimilarity("ACME REALTY", "ACME REALTY"))
	assert.Equal(t, 100, LevenshteinSimilarity("a", "a"))
}

func TestLevenshteinSimilarity_BothEmpty(t *testing.T) {
	assert.Equal(t, 100, LevenshteinSimilarity("", ""))
}

func TestLevenshteinSimilarity_OneEmpty(t *testing.T) {
	assert.Equal(t, 0, LevenshteinSimilarity("", "ACME"))
	assert.Equal(t, 0, LevenshteinSimilarity("ACME", ""))
}

func TestLevenshteinSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"MAIN STREET", "MAIN ST"},
		{"SMITH", "JONES"},
		{"123 BROADWAY", "125 BROADWAY"},
	}
	for _, p := range pairs {
		assert.Equal(t, LevenshteinSimilarity(p[0], p[1]), LevenshteinSimilarity(p[1], p[0]))
	}
}

func TestLevenshteinSimilarity_Scale(t *testing.T) {
	// One substitution in a 4-char string: round((1-1/4)*100) = 75.
	assert.Equal(t, 75, LevenshteinSimilarity("ACME", "ACNE"))
	// Completely different same-length strings score 0.
	assert.Equal(t, 0, LevenshteinSimilarity("ABC", "XYZ"))
}

func TestLevenshteinSimilarity_Unicode(t *testing.T) {
	// Rune-based lengths: one rune substitution in a 4-rune string.
	assert.Equal(t, 75, LevenshteinSimilarity("JOSÉ", "JOSE"))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance("ACME", "ACME"))
	assert.Equal(t, 1, Distance("ACME", "ACNE"))
	assert.Equal(t, 3, Distance("KITTEN", "SITTING"))
}
