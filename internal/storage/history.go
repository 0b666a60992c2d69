package storage

import (
	"fmt"
	"log"
	"time"
)

// RecordQuery stores one answered query.
func (s *SQLiteStorage) RecordQuery(rec QueryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return nil
	}

	found := 0
	if rec.Found {
		found = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO query_history (search_id, operation, query_hash, library, results_count, found, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		rec.SearchID,
		rec.Operation,
		rec.QueryHash,
		rec.Library,
		rec.ResultsCount,
		found,
		formatTimestamp(rec.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}
	return nil
}

// Stats aggregates the stored queries per operation, sorted by operation.
func (s *SQLiteStorage) Stats() (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{Operations: []OperationStats{}}
	if !s.enabled || s.db == nil {
		return stats, nil
	}

	rows, err := s.db.Query(`
		SELECT operation, COUNT(*), COALESCE(SUM(CASE WHEN found = 0 THEN 1 ELSE 0 END), 0)
		FROM query_history
		GROUP BY operation
		ORDER BY operation
	`)
	if err != nil {
		return stats, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var op OperationStats
		if err := rows.Scan(&op.Operation, &op.Total, &op.Misses); err != nil {
			return stats, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats.Total += op.Total
		stats.Misses += op.Misses
		stats.Operations = append(stats.Operations, op)
	}
	return stats, rows.Err()
}

// Cleanup removes records older than retention.
func (s *SQLiteStorage) Cleanup(retention time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return nil
	}

	cutoff := formatTimestamp(time.Now().Add(-retention))
	if _, err := s.db.Exec("DELETE FROM query_history WHERE timestamp < ?", cutoff); err != nil {
		log.Printf("Warning: failed to cleanup query_history: %v", err)
	}

	if _, err := s.db.Exec("VACUUM"); err != nil {
		log.Printf("Warning: failed to vacuum database: %v", err)
	}

	return nil
}
