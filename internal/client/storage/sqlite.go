package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
  partition  TEXT NOT NULL,
  name       TEXT NOT NULL,
  value      BLOB NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY (partition, name)
);
`

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// OpenInDir opens the default store database inside dir.
func OpenInDir(dir string) (*SQLiteStore, error) {
	return Open(filepath.Join(dir, "budgetbox.db"))
}

func (s *SQLiteStore) Get(ctx context.Context, partition, name string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE partition = ? AND name = ?`,
		partition, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to select record: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, partition, name string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (partition, name, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(partition, name) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		partition, name, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, partition, name string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE partition = ? AND name = ?`,
		partition, name)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
