// Package storage provides SQLite-based persistence for the conversion
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vividmap/recolor/internal/session"
)

// Store manages the SQLite database connection for history persistence.
type Store struct {
	db *sql.DB
}

// Conversion represents a single recorded muted → vivid conversion.
type Conversion struct {
	ID        int64
	Muted     string
	Vivid     string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			muted TEXT NOT NULL,
			vivid TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_conversions_muted ON conversions(muted);
		CREATE INDEX IF NOT EXISTS idx_conversions_recent ON conversions(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveConversion records one resolved conversion.
// Returns the ID of the inserted record.
func (s *Store) SaveConversion(muted, vivid string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO conversions (muted, vivid) VALUES (?, ?)",
		muted, vivid,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save conversion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentConversions retrieves the latest N conversions, newest first.
func (s *Store) RecentConversions(limit int) ([]Conversion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, muted, vivid, created_at
		 FROM conversions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query conversions: %w", err)
	}
	defer rows.Close()

	var entries []Conversion
	for rows.Next() {
		var c Conversion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Muted, &c.Vivid, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			c.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				c.CreatedAt = parsed
			}
		}
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CountConversions returns the total number of recorded conversions.
func (s *Store) CountConversions() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM conversions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count conversions: %w", err)
	}
	return count, nil
}

// ClearConversions deletes the whole history.
func (s *Store) ClearConversions() error {
	_, err := s.db.Exec("DELETE FROM conversions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear conversions: %w", err)
	}
	return nil
}

// Record implements session.Recorder.
// This adapter lets the loop record hits without depending on storage.
func (s *Store) Record(muted, vivid string) error {
	_, err := s.SaveConversion(muted, vivid)
	return err
}

// Ensure Store implements Recorder
var _ session.Recorder = (*Store)(nil)
