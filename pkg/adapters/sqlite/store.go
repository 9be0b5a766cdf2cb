// Package sqlite is the primary transactional backend: the board state is
// one row of a key-value table in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aretw0/boardflow/pkg/core"
)

const (
	// DefaultKey is the row key used when Config.Key is empty.
	DefaultKey = "state"

	schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

	upsert = `
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// Config holds the configuration for the SQLite store.
type Config struct {
	Path   string
	Key    string
	Logger *slog.Logger
}

// Store implements core.Backend on SQLite.
type Store struct {
	db     *sql.DB
	path   string
	key    string
	logger *slog.Logger

	mu        sync.RWMutex
	writes    int
	lastWrite *time.Time
	closed    bool
}

// Open opens (creating if needed) the database at cfg.Path and ensures the
// schema exists.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps writers from racing for the database lock.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{db: db, path: cfg.Path, key: key, logger: logger}, nil
}

// Name implements core.Backend.
func (s *Store) Name() string { return "sqlite" }

// Read implements core.Backend.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", s.key, err)
	}
	return []byte(value), nil
}

// Write implements core.Backend.
func (s *Store) Write(ctx context.Context, data []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, upsert, s.key, string(data), now.Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to write %q: %w", s.key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.mu.Lock()
	s.writes++
	s.lastWrite = &now
	s.mu.Unlock()

	s.logger.Debug("state written", "backend", "sqlite", "bytes", len(data))
	return nil
}

// Close implements core.Backend.
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.db.Close()
}

var _ core.Backend = (*Store)(nil)
