/*
Package storage implements the persistent query history.

Every icon or component query answered by the server can be recorded as a
row of query_history. The query text is never stored, only its SHA-256
hash, so the database can report miss rates without keeping what users
searched for.

The database lives at ~/.icon-hub-mcp/history.db and uses modernc.org/sqlite
(a pure Go, CGo-free implementation). If it cannot be opened, the storage
disables itself and every operation becomes a no-op.
*/
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// DatabaseFile is the history database name inside the home directory.
const DatabaseFile = "history.db"

// Storage defines the persistent history operations.
type Storage interface {
	// Init opens the database and runs migrations.
	Init() error

	// RecordQuery stores one answered query.
	RecordQuery(rec QueryRecord) error

	// Stats aggregates the stored queries per operation.
	Stats() (Stats, error)

	// Cleanup removes records older than retention.
	Cleanup(retention time.Duration) error

	// Close closes the database connection.
	Close() error
}

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewStorage creates a storage backed by the database at dbPath. The file
// and its directory are created by Init.
func NewStorage(dbPath string) *SQLiteStorage {
	return &SQLiteStorage{
		dbPath:  dbPath,
		enabled: dbPath != "",
	}
}

// NewDisabledStorage returns a storage whose operations are all no-ops.
func NewDisabledStorage() *SQLiteStorage {
	return &SQLiteStorage{}
}

// Enabled reports whether the database is in use.
func (s *SQLiteStorage) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Path returns the database location.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// Init initializes the database and runs migrations.
//
// If initialization fails, storage is disabled and subsequent operations
// become no-ops.
func (s *SQLiteStorage) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.disable(initErr)
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.disable(initErr)
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.disable(initErr)
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.disable(initErr)
			return
		}
	})

	return initErr
}

func (s *SQLiteStorage) disable(err error) {
	log.Printf("Warning: query history disabled: %v", err)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.db = nil
	return nil
}

// HashQuery creates a SHA256 hash of a query string for privacy.
func HashQuery(query string) string {
	hash := sha256.Sum256([]byte(query))
	return hex.EncodeToString(hash[:])
}

// timestampLayout is fixed-width so stored timestamps compare as text.
const timestampLayout = "2006-01-02T15:04:05Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
