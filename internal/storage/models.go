package storage

import "time"

// QueryRecord is one answered query.
type QueryRecord struct {
	// SearchID is a unique identifier for this query (UUID).
	SearchID string `json:"search_id"`

	// Operation names the query class, e.g. "check" or "similar".
	Operation string `json:"operation"`

	// QueryHash is the SHA256 hash of the query text.
	QueryHash string `json:"query_hash"`

	// Library is the library filter, empty when none was given.
	Library string `json:"library"`

	// ResultsCount is the number of results returned.
	ResultsCount int `json:"results_count"`

	// Found is false for misses (unknown icon, no results).
	Found bool `json:"found"`

	// Timestamp is when the query was answered.
	Timestamp time.Time `json:"timestamp"`
}

// OperationStats aggregates the records of one operation.
type OperationStats struct {
	Operation string `json:"operation"`
	Total     int    `json:"total"`
	Misses    int    `json:"misses"`
}

// Stats aggregates the whole history.
type Stats struct {
	Total      int              `json:"total"`
	Misses     int              `json:"misses"`
	Operations []OperationStats `json:"operations"`
}

// MissRate returns the share of queries that found nothing.
func (s Stats) MissRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Misses) / float64(s.Total)
}
