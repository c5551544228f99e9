package storage

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLMedium implements Medium on top of a shared MySQL table. Use this when
// several dashboard instances should warm from the same persisted cache.
type MySQLMedium struct {
	db *sql.DB
}

// NewMySQLMedium connects to MySQL and ensures the cache table exists.
func NewMySQLMedium(dsn string) (*MySQLMedium, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS cache_records (
		record_key VARCHAR(512) PRIMARY KEY,
		record_value MEDIUMTEXT NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache_records table: %w", err)
	}

	log.Printf("[MySQLMedium] Initialized")
	return &MySQLMedium{db: db}, nil
}

// GetItem retrieves a value by key.
func (m *MySQLMedium) GetItem(key string) (string, error) {
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
func (m *MySQLMedium) SetItem(key, value string) error {
	query := `
		INSERT INTO cache_records (record_key, record_value)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE record_value = VALUES(record_value)`

	if _, err := m.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write cache record: %w", err)
	}
	return nil
}

// RemoveItem deletes a key.
func (m *MySQLMedium) RemoveItem(key string) error {
	if _, err := m.db.Exec(`DELETE FROM cache_records WHERE record_key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete cache record: %w", err)
	}
	return nil
}

// Keys returns all keys starting with prefix.
func (m *MySQLMedium) Keys(prefix string) ([]string, error) {
	rows, err := m.db.Query(
		`SELECT record_key FROM cache_records WHERE record_key LIKE CONCAT(?, '%')`, prefix,
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
func (m *MySQLMedium) Close() error {
	return m.db.Close()
}
