// Package bolt is an alternative primary backend keeping the board state
// under one key of a bbolt bucket.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/aretw0/boardflow/pkg/core"
)

const (
	DefaultBucket  = "boardflow"
	DefaultKey     = "state"
	DefaultTimeout = time.Second
)

// Config holds the configuration for the bbolt store.
type Config struct {
	Path    string
	Bucket  string
	Key     string
	Timeout time.Duration // how long Open waits for the file lock
	Logger  *slog.Logger
}

// Store implements core.Backend on bbolt.
type Store struct {
	db     *bbolt.DB
	bucket []byte
	key    []byte
	logger *slog.Logger

	mu        sync.RWMutex
	writes    int
	lastWrite *time.Time
}

// Open opens the database file and creates the bucket.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("bolt: path is required")
	}
	if cfg.Bucket == "" {
		cfg.Bucket = DefaultBucket
	}
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(cfg.Path, 0600, &bbolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(cfg.Bucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{
		db:     db,
		bucket: []byte(cfg.Bucket),
		key:    []byte(cfg.Key),
		logger: cfg.Logger,
	}, nil
}

// Name implements core.Backend.
func (s *Store) Name() string { return "bolt" }

// Read implements core.Backend.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return core.ErrNotFound
		}
		v := b.Get(s.key)
		if v == nil {
			return core.ErrNotFound
		}
		// v is only valid inside the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read %q: %w", s.key, err)
	}
	return data, nil
}

// Write implements core.Backend.
func (s *Store) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put(s.key, data)
	})
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", s.key, err)
	}

	now := time.Now()
	s.mu.Lock()
	s.writes++
	s.lastWrite = &now
	s.mu.Unlock()

	s.logger.Debug("state written", "backend", "bolt", "bytes", len(data))
	return nil
}

// Close implements core.Backend.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ core.Backend = (*Store)(nil)
