// Package fuzzy provides bounded edit-distance matching for CLI
// suggestions: unknown long options and command tokens are matched
// against the declared names to propose a correction.
package fuzzy

import "strings"

// Matcher finds the closest candidate within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int

	// Reusable rows for the two-row distance matrix; a Matcher is not
	// safe for concurrent use.
	prevRow []int
	currRow []int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't guess for near-empty input
	}
}

// Best returns the candidate with the smallest edit distance to input
// not exceeding the matcher's maximum, or "" when nothing is close
// enough. Ties are broken by candidate order: the first best wins.
func (m *Matcher) Best(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}

	folded := strings.ToLower(input)
	best := ""
	bestDist := m.maxDistance + 1

	for _, candidate := range candidates {
		if candidate == input {
			continue // exact matches are the caller's bug, not a typo
		}
		fc := strings.ToLower(candidate)
		// A case-only mismatch is the closest typo there is.
		if fc == folded {
			return candidate
		}
		// A length gap beyond the bound can never close.
		if abs(len(fc)-len(folded)) > m.maxDistance {
			continue
		}
		if d := m.distance(folded, fc); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// distance computes the Levenshtein distance between a and b with unit
// insert/delete/substitute costs, terminating early once every cell of
// a row exceeds the maximum useful distance.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	m.prevRow = growRow(m.prevRow, len(a)+1)
	m.currRow = growRow(m.currRow, len(a)+1)
	prev, curr := m.prevRow, m.currRow

	for i := 0; i <= len(a); i++ {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = minThree(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func growRow(row []int, n int) []int {
	if cap(row) < n {
		return make([]int, n)
	}
	return row[:n]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Best is a convenience wrapper for one-shot lookups.
func Best(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, candidates)
}
