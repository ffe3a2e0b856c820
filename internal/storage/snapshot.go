// Package storage provides the local snapshot store: a SQLite cache of the
// raw table files so query commands can run offline between loads. The store
// is a transport cache only; the analytics engine never writes derived
// results back.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	goverrors "govlens/internal/errors"
	"govlens/internal/logging"
)

// Snapshot is a handle to the local snapshot database.
type Snapshot struct {
	conn   *sql.DB
	logger *logging.Logger
	path   string
}

const schema = `
CREATE TABLE IF NOT EXISTS tables (
	name       TEXT PRIMARY KEY,
	content    BLOB NOT NULL,
	fetched_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Open opens or creates the snapshot database at .govlens/govlens.db.
func Open(root string, logger *logging.Logger) (*Snapshot, error) {
	dir := filepath.Join(root, ".govlens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .govlens directory: %w", err)
	}

	dbPath := filepath.Join(dir, "govlens.db")
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize snapshot schema: %w", err)
	}

	return &Snapshot{conn: conn, logger: logger, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Snapshot) Close() error {
	return s.conn.Close()
}

// Path returns the database file path.
func (s *Snapshot) Path() string {
	return s.path
}

// SaveTable stores the raw content of a fetched table, replacing any earlier
// copy.
func (s *Snapshot) SaveTable(name string, content []byte) error {
	_, err := s.conn.Exec(
		`INSERT INTO tables (name, content, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET content = excluded.content, fetched_at = excluded.fetched_at`,
		name, content, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save table %s: %w", name, err)
	}
	return nil
}

// Table returns the cached content of a table, or a SNAPSHOT_MISSING error
// when no copy exists.
func (s *Snapshot) Table(name string) ([]byte, error) {
	var content []byte
	err := s.conn.QueryRow(`SELECT content FROM tables WHERE name = ?`, name).Scan(&content)
	if err == sql.ErrNoRows {
		return nil, goverrors.NewGovError(goverrors.SnapshotMissing,
			"no snapshot of table "+name, nil,
			goverrors.GetSuggestedFixes(goverrors.SnapshotMissing))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", name, err)
	}
	return content, nil
}

// SetMeta stores a metadata value (refresh timestamp, data version).
func (s *Snapshot) SetMeta(key, value string) error {
	_, err := s.conn.Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to save meta %s: %w", key, err)
	}
	return nil
}

// Meta returns a metadata value, or empty string when unset.
func (s *Snapshot) Meta(key string) (string, error) {
	var value string
	err := s.conn.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read meta %s: %w", key, err)
	}
	return value, nil
}
