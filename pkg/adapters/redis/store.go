// Package redis is an alternative primary backend keeping the board state
// in a single Redis string key.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aretw0/boardflow/pkg/core"
)

// DefaultKey is the Redis key used when Config.Key is empty.
const DefaultKey = "boardflow:state:v1"

// Config holds the configuration for the Redis store.
type Config struct {
	Client *goredis.Client
	Key    string
	// OwnsClient makes Close close the client too.
	OwnsClient bool
}

// Store implements core.Backend on Redis.
type Store struct {
	client     *goredis.Client
	key        string
	ownsClient bool

	mu        sync.RWMutex
	writes    int
	lastWrite *time.Time
}

// New wraps an existing client.
func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, errors.New("redis: client is required")
	}
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: cfg.Client, key: key, ownsClient: cfg.OwnsClient}, nil
}

// Name implements core.Backend.
func (s *Store) Name() string { return "redis" }

// Ping checks the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Read implements core.Backend.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return data, nil
}

// Write implements core.Backend. The key never expires.
func (s *Store) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	now := time.Now()
	s.mu.Lock()
	s.writes++
	s.lastWrite = &now
	s.mu.Unlock()
	return nil
}

// Close implements core.Backend.
func (s *Store) Close() error {
	if !s.ownsClient {
		return nil
	}
	return s.client.Close()
}

var _ core.Backend = (*Store)(nil)
