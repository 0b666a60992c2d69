/*
Package history records answered queries in the background.

Query handlers call Tracker.Track, which never blocks: events go to a
buffered channel and a single goroutine writes them to storage in batches.
When the queue is full the event is dropped.
*/
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/khanglvm/icon-hub-mcp/internal/storage"
)

// Operation names recorded in the history.
const (
	OpList             = "list"
	OpCheck            = "check"
	OpSimilar          = "similar"
	OpExample          = "example"
	OpSearch           = "search"
	OpComponentList    = "components_list"
	OpComponentGet     = "components_get"
	OpComponentSearch  = "components_search"
	OpComponentExample = "components_example"
)

// Event is one answered query.
type Event struct {
	// SearchID identifies the query (UUID v4).
	SearchID string

	// Operation is one of the Op constants.
	Operation string

	// Query is the raw query text; only its hash is persisted.
	Query string

	// Library is the library filter, empty when none was given.
	Library string

	// ResultsCount is the number of results returned.
	ResultsCount int

	// Found is false for misses.
	Found bool

	// Timestamp is when the query was answered.
	Timestamp time.Time
}

// NewEvent creates an event stamped with a fresh search id and the current time.
func NewEvent(op, query, library string, results int, found bool) Event {
	return Event{
		SearchID:     uuid.NewString(),
		Operation:    op,
		Query:        query,
		Library:      library,
		ResultsCount: results,
		Found:        found,
		Timestamp:    time.Now(),
	}
}

// ToStorage converts the event to its persisted form.
func (e Event) ToStorage() storage.QueryRecord {
	return storage.QueryRecord{
		SearchID:     e.SearchID,
		Operation:    e.Operation,
		QueryHash:    storage.HashQuery(e.Query),
		Library:      e.Library,
		ResultsCount: e.ResultsCount,
		Found:        e.Found,
		Timestamp:    e.Timestamp,
	}
}
