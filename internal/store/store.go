package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// DefaultMaxRecords bounds the number of review records the store keeps,
// standing in for the original platform's storage quota.
const DefaultMaxRecords = 10000

// ErrStorageQuota is returned when a review write would exceed the record
// quota. Callers may evict and retry via SaveStateEvicting.
var ErrStorageQuota = errors.New("review store quota exceeded")

// Store is a key-value persistence layer over SQLite. Review records,
// the direction preference, the session history log and the recovery
// snapshot all live in one kv table, JSON-encoded per key.
type Store struct {
	db *sqlx.DB

	// MaxRecords caps the number of stored review records.
	MaxRecords int

	directionSubs []func(d string)
}

// Open creates a Store backed by the SQLite database at dsn. It applies
// recommended pragmas and creates the kv table.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{db: db, MaxRecords: DefaultMaxRecords}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// get returns the value for key. found is false when the key is absent.
func (s *Store) get(key string) (value string, found bool, err error) {
	err = s.db.Get(&value, "SELECT value FROM kv WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// put upserts a key.
func (s *Store) put(key, value string, now time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now.UTC())
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// valuesByPrefix returns all values whose key starts with prefix.
// GLOB keeps underscores literal, unlike LIKE.
func (s *Store) valuesByPrefix(prefix string) ([]string, error) {
	var values []string
	err := s.db.Select(&values, "SELECT value FROM kv WHERE key GLOB ? ORDER BY key", prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan prefix %s: %w", prefix, err)
	}
	return values, nil
}

func (s *Store) countByPrefix(prefix string) (int, error) {
	var n int
	err := s.db.Get(&n, "SELECT COUNT(*) FROM kv WHERE key GLOB ?", prefix+"*")
	if err != nil {
		return 0, fmt.Errorf("count prefix %s: %w", prefix, err)
	}
	return n, nil
}

// deleteOldestByPrefix removes the n least recently written keys under
// prefix. Oldest-reviewed records go first on quota eviction.
func (s *Store) deleteOldestByPrefix(prefix string, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := s.db.Exec(`
		DELETE FROM kv WHERE key IN (
			SELECT key FROM kv WHERE key GLOB ? ORDER BY updated_at ASC, key ASC LIMIT ?
		)`, prefix+"*", n)
	if err != nil {
		return fmt.Errorf("evict prefix %s: %w", prefix, err)
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEKSIKA_DB environment variable
// 2. $XDG_DATA_HOME/leksika/leksika.db
// 3. ~/.local/share/leksika/leksika.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEKSIKA_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "leksika", "leksika.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
