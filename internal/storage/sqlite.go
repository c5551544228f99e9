package storage

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteMedium implements Medium on top of a single SQLite table.
// Thread-safe with WAL mode for high-concurrency reads.
type SQLiteMedium struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteMedium opens (or creates) the backing database file.
// dbPath is the path to the SQLite database file (e.g., "./data/cache.db")
func NewSQLiteMedium(dbPath string) (*SQLiteMedium, error) {
	// Open with WAL mode and other optimizations
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite connection pool settings
	db.SetMaxOpenConns(1) // SQLite only supports 1 writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	query := `
	CREATE TABLE IF NOT EXISTS cache_records (
		record_key TEXT PRIMARY KEY,
		record_value TEXT NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create cache_records table: %w", err)
	}

	log.Printf("[SQLiteMedium] Initialized with database: %s", dbPath)
	return &SQLiteMedium{db: db}, nil
}

// GetItem retrieves a value by key.
func (m *SQLiteMedium) GetItem(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var value string
	err := m.db.QueryRow(
		`SELECT record_value FROM cache_records WHERE record_key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cache record: %w", err)
	}
	return value, nil
}

// SetItem inserts or replaces a value.
func (m *SQLiteMedium) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	query := `
		INSERT INTO cache_records (record_key, record_value)
		VALUES (?, ?)
		ON CONFLICT(record_key) DO UPDATE SET record_value = excluded.record_value`

	if _, err := m.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write cache record: %w", err)
	}
	return nil
}

// RemoveItem deletes a key.
func (m *SQLiteMedium) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.db.Exec(`DELETE FROM cache_records WHERE record_key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete cache record: %w", err)
	}
	return nil
}

// Keys returns all keys starting with prefix.
func (m *SQLiteMedium) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, err := m.db.Query(
		`SELECT record_key FROM cache_records WHERE record_key LIKE ? || '%'`, prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache records: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database connection.
func (m *SQLiteMedium) Close() error {
	return m.db.Close()
}
