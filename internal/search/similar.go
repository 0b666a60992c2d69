package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	// DefaultSuggestionLimit is used when a caller passes no positive limit.
	DefaultSuggestionLimit = 5

	// SimilarityThreshold is the exclusive lower bound for a suggestion.
	SimilarityThreshold = 0.3

	containmentWeight = 0.5
	editWeight        = 0.3
	tagWeight         = 0.2
)

// FindSimilar ranks every (name, record) pair of the index against query
// and returns at most limit suggestions scoring above SimilarityThreshold,
// best first. Equal scores keep enumeration order. An empty query yields no
// suggestions.
func (idx *Index) FindSimilar(query string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	results := []Suggestion{}
	if query == "" {
		return results
	}

	for _, name := range idx.names {
		for _, rec := range idx.buckets[name] {
			score := Score(query, name, rec.Tags)
			if score <= SimilarityThreshold {
				continue
			}
			results = append(results, Suggestion{
				Name:     name,
				Library:  rec.Library,
				Score:    score,
				Variants: rec.Variants,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Score computes the composite similarity of query against a candidate
// name and its tags: containment (0.5) + normalized edit distance (up to
// 0.3) + tag overlap (0.2). Matching is case-sensitive.
func Score(query, candidate string, tags []string) float64 {
	var score float64

	if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
		score += containmentWeight
	}

	score += (1 - NormalizedEditDistance(query, candidate)) * editWeight

	for _, tag := range tags {
		if strings.Contains(tag, query) || strings.Contains(query, tag) {
			score += tagWeight
			break
		}
	}

	return score
}

// EditDistance returns the Levenshtein distance between a and b, counted
// in runes.
func EditDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// NormalizedEditDistance divides EditDistance by the rune length of the
// longer string. Two empty strings have distance 0.
func NormalizedEditDistance(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 0
	}
	return float64(EditDistance(a, b)) / float64(maxLen)
}
