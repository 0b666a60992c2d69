package history

import (
	"log"
	"sync"
	"time"

	"github.com/khanglvm/icon-hub-mcp/internal/storage"
)

const (
	// eventQueueSize is the buffer size for the event queue.
	// If full, events are dropped (non-blocking).
	eventQueueSize = 1000

	// batchFlushSize is the number of events that triggers an immediate flush.
	batchFlushSize = 10

	// flushInterval is how often pending events are written.
	flushInterval = 50 * time.Millisecond
)

// Tracker records query events in the background with non-blocking writes.
type Tracker struct {
	storage    storage.Storage
	eventQueue chan Event
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	enabled    bool
	mu         sync.RWMutex
}

// NewTracker initializes s and starts the background writer. A storage that
// fails to initialize leaves the tracker disabled.
func NewTracker(s storage.Storage) *Tracker {
	t := &Tracker{
		storage:    s,
		eventQueue: make(chan Event, eventQueueSize),
		stopChan:   make(chan struct{}),
		enabled:    s != nil,
	}

	if s != nil {
		if err := s.Init(); err != nil {
			log.Printf("Warning: history storage initialization failed: %v", err)
			t.enabled = false
		}
	}

	t.wg.Add(1)
	go t.processEvents()

	return t
}

// Track queues event for writing. It never blocks; if the queue is full the
// event is dropped and a warning is logged.
func (t *Tracker) Track(event Event) {
	if !t.IsEnabled() {
		return
	}

	select {
	case t.eventQueue <- event:
	default:
		log.Printf("Warning: history queue full, dropping %s event", event.Operation)
	}
}

// Stop shuts down the tracker after flushing queued events.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
		t.wg.Wait()
	})
}

// Disable makes Track ignore new events.
func (t *Tracker) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = false
}

// Enable resumes tracking.
func (t *Tracker) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = t.storage != nil
}

// IsEnabled returns whether tracking is enabled.
func (t *Tracker) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

// QueueLen returns the number of events waiting to be written.
func (t *Tracker) QueueLen() int {
	return len(t.eventQueue)
}

func (t *Tracker) processEvents() {
	defer t.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]Event, 0, batchFlushSize)

	for {
		select {
		case event := <-t.eventQueue:
			batch = append(batch, event)
			if len(batch) >= batchFlushSize {
				t.flush(batch)
				batch = batch[:0]
			}

		case <-ticker.C:
			if len(batch) > 0 {
				t.flush(batch)
				batch = batch[:0]
			}

		case <-t.stopChan:
			for {
				select {
				case event := <-t.eventQueue:
					batch = append(batch, event)
					if len(batch) >= batchFlushSize {
						t.flush(batch)
						batch = batch[:0]
					}
				default:
					t.flush(batch)
					return
				}
			}
		}
	}
}

func (t *Tracker) flush(events []Event) {
	for _, event := range events {
		if err := t.storage.RecordQuery(event.ToStorage()); err != nil {
			log.Printf("Warning: failed to record %s query: %v", event.Operation, err)
		}
	}
}
