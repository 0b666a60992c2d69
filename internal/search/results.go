/*
Package search implements the icon similarity index.

The Index maps icon names to the records sharing that name across libraries
and answers exact checks, substring listing, and "did you mean" similarity
queries. A bleve-backed KeywordIndex adds BM25-ranked search over names,
tags, aliases and categories.

Both indexes are built once and are read-only afterwards, so queries may run
concurrently without locking.
*/
package search

// Suggestion is one ranked "did you mean" candidate.
type Suggestion struct {
	Name     string   `json:"name"`
	Library  string   `json:"library"`
	Score    float64  `json:"similarity"`
	Variants []string `json:"variants"`
}

// CheckResult is the outcome of an existence/variant check.
// Not-found conditions are values, not errors.
type CheckResult struct {
	Exists      bool         `json:"exists"`
	Library     string       `json:"library,omitempty"`
	Variants    []string     `json:"variants,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// KeywordHit is a single BM25 search result.
type KeywordHit struct {
	Name     string   `json:"name"`
	Library  string   `json:"library"`
	Score    float64  `json:"score"`
	Variants []string `json:"variants"`
}
