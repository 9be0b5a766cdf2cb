// Package fs stores the board state as a JSON file on disk.
//
// It is the simple key-value fallback of the persistence chain: one file per
// key, replaced atomically on every write.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/boardflow/pkg/core"
)

const (
	// DefaultKey is the state key used when Config.Key is empty.
	DefaultKey = "boardflow.state.v1"

	filePerm = 0644
	dirPerm  = 0755
)

// Config holds the configuration for the file store.
type Config struct {
	Dir    string
	Key    string
	Logger *slog.Logger
}

// Store implements core.Backend on a single file.
type Store struct {
	dir    string
	key    string
	path   string
	logger *slog.Logger

	mu            sync.RWMutex
	lastWritten   []byte
	lastWrite     *time.Time
	watcherActive bool
}

// NewStore creates a file store. Nothing touches the disk until the first
// Read or Write.
func NewStore(cfg Config) *Store {
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		dir:    cfg.Dir,
		key:    key,
		path:   filepath.Join(cfg.Dir, key+".json"),
		logger: logger,
	}
}

// Name implements core.Backend.
func (s *Store) Name() string { return "fs" }

// Path returns the state file location.
func (s *Store) Path() string { return s.path }

// Key returns the state key the file is named after.
func (s *Store) Key() string { return s.key }

// Read implements core.Backend.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return data, nil
}

// Write implements core.Backend.
func (s *Store) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.path, data, filePerm); err != nil {
		return err
	}
	now := time.Now()
	s.lastWrite = &now
	s.lastWritten = bytes.Clone(data)
	s.logger.Debug("state written", "path", s.path, "bytes", len(data))
	return nil
}

// Close implements core.Backend.
func (s *Store) Close() error { return nil }

// ownWrite reports whether data is what this store wrote last.
func (s *Store) ownWrite(data []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastWritten != nil && bytes.Equal(s.lastWritten, data)
}

var _ core.Backend = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
