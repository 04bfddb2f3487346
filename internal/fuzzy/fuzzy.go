// Package fuzzy provides edit-distance matching for "did you mean"
// suggestions in argument diagnostics.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds close candidates within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// Match is a single candidate with its distance from the input.
type Match struct {
	Value    string
	Distance int
}

// FindBest returns the closest candidate, or an empty string when none is
// within the maximum distance.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all candidates within the maximum distance, closest
// first. Ties are broken by longer common prefix, then candidate order.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	lowered := strings.ToLower(input)
	var matches []Match
	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)
		if lowered == candidateLower {
			// Exact matches are not fuzzy.
			continue
		}
		if d := m.distance(lowered, candidateLower); d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return commonPrefixLen(lowered, strings.ToLower(matches[i].Value)) >
			commonPrefixLen(lowered, strings.ToLower(matches[j].Value))
	})
	return matches
}

// distance computes the Levenshtein distance between a and b, returning
// maxDistance+1 early when the result is guaranteed to exceed the limit.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	// Two-row dynamic programming; rows are sized to the shorter string.
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
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
			curr[j] = minThree(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
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

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
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

// FindBest is the package-level convenience used by error handlers.
func FindBest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}

// FindSuggestions returns up to maxSuggestions close candidates.
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, match.Value)
	}
	return suggestions
}
