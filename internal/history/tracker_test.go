package history

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/khanglvm/icon-hub-mcp/internal/storage"
)

type mockStorage struct {
	mu      sync.Mutex
	records []storage.QueryRecord
	initErr error
	failAll bool
}

func (m *mockStorage) Init() error { return m.initErr }

func (m *mockStorage) RecordQuery(rec storage.QueryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("disk full")
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockStorage) Stats() (storage.Stats, error) { return storage.Stats{}, nil }
func (m *mockStorage) Cleanup(time.Duration) error   { return nil }
func (m *mockStorage) Close() error                  { return nil }

func (m *mockStorage) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func waitForCount(t *testing.T, m *mockStorage, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if m.count() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d records, got %d", want, m.count())
}

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(&mockStorage{})
	defer tracker.Stop()

	if !tracker.IsEnabled() {
		t.Error("expected tracker to be enabled")
	}
}

func TestNewTrackerInitFailure(t *testing.T) {
	store := &mockStorage{initErr: errors.New("locked")}
	tracker := NewTracker(store)
	defer tracker.Stop()

	if tracker.IsEnabled() {
		t.Error("tracker should be disabled when storage fails to initialize")
	}
	tracker.Track(NewEvent(OpCheck, "user", "", 1, true))
	if tracker.QueueLen() != 0 {
		t.Error("disabled tracker should not queue events")
	}
}

func TestNilStorage(t *testing.T) {
	tracker := NewTracker(nil)
	defer tracker.Stop()

	tracker.Enable()
	if tracker.IsEnabled() {
		t.Error("tracker without storage cannot be enabled")
	}
}

func TestTrack(t *testing.T) {
	store := &mockStorage{}
	tracker := NewTracker(store)
	defer tracker.Stop()

	tracker.Track(NewEvent(OpCheck, "user", "heroicons", 1, true))

	waitForCount(t, store, 1)

	rec := store.records[0]
	if rec.Operation != OpCheck || rec.Library != "heroicons" || !rec.Found {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.QueryHash != storage.HashQuery("user") {
		t.Error("query should be stored as its hash")
	}
}

func TestTrackMultiple(t *testing.T) {
	store := &mockStorage{}
	tracker := NewTracker(store)
	defer tracker.Stop()

	for i := 0; i < 25; i++ {
		tracker.Track(NewEvent(OpSimilar, "arow", "", 3, true))
	}

	waitForCount(t, store, 25)
}

func TestDisableEnable(t *testing.T) {
	store := &mockStorage{}
	tracker := NewTracker(store)

	tracker.Disable()
	tracker.Track(NewEvent(OpList, "", "", 10, true))

	tracker.Enable()
	tracker.Track(NewEvent(OpList, "home", "", 2, true))

	tracker.Stop()

	if store.count() != 1 {
		t.Errorf("expected only the enabled event, got %d", store.count())
	}
}

func TestStopFlushes(t *testing.T) {
	store := &mockStorage{}
	tracker := NewTracker(store)

	for i := 0; i < 5; i++ {
		tracker.Track(NewEvent(OpCheck, "user", "", 1, true))
	}
	tracker.Stop()

	if store.count() != 5 {
		t.Errorf("expected 5 events after stop, got %d", store.count())
	}

	// Stop is idempotent.
	tracker.Stop()
}

func TestTrackNonBlocking(t *testing.T) {
	tracker := NewTracker(&mockStorage{})
	defer tracker.Stop()

	start := time.Now()
	for i := 0; i < eventQueueSize*2; i++ {
		tracker.Track(NewEvent(OpCheck, "user", "", 1, true))
	}

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Track is blocking: took %v", elapsed)
	}
	if size := tracker.QueueLen(); size > eventQueueSize {
		t.Errorf("queue size %d exceeds capacity %d", size, eventQueueSize)
	}
}

func TestStorageError(t *testing.T) {
	store := &mockStorage{failAll: true}
	tracker := NewTracker(store)
	defer tracker.Stop()

	tracker.Track(NewEvent(OpCheck, "user", "", 1, true))
	time.Sleep(100 * time.Millisecond)

	if !tracker.IsEnabled() {
		t.Error("expected tracker to remain enabled after storage error")
	}
}

func TestEventToStorage(t *testing.T) {
	ev := NewEvent(OpSearch, "arrow", "phosphor", 4, true)

	rec := ev.ToStorage()

	if rec.SearchID == "" || rec.SearchID != ev.SearchID {
		t.Errorf("search id not carried over: %q", rec.SearchID)
	}
	if rec.QueryHash != storage.HashQuery("arrow") {
		t.Error("unexpected query hash")
	}
	if rec.ResultsCount != 4 || rec.Library != "phosphor" {
		t.Errorf("unexpected record: %+v", rec)
	}

	other := NewEvent(OpSearch, "arrow", "phosphor", 4, true)
	if other.SearchID == ev.SearchID {
		t.Error("search ids should be unique")
	}
}
