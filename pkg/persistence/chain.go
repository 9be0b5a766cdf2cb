// Package persistence moves board state between memory and the storage
// backends.
//
// A Chain tries a primary transactional backend, then a simple fallback
// backend, then an in-memory snapshot of the last save. A primary that fails
// once is skipped for the rest of the session. Every payload read back is
// normalized with core.DecodeState before it is trusted.
package persistence

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/boardflow/pkg/core"
)

// MemoryBackend is the name reported for the in-memory snapshot.
const MemoryBackend = "memory"

// Result is the outcome of one backend during a Save.
type Result struct {
	Backend string
	Err     error
}

// OK reports whether the backend accepted the write.
func (r Result) OK() bool { return r.Err == nil }

// Option configures a Chain.
type Option func(*Chain)

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the time source used when normalizing loaded notes.
func WithClock(now func() time.Time) Option {
	return func(c *Chain) {
		if now != nil {
			c.now = now
		}
	}
}

// Chain is safe for concurrent use.
type Chain struct {
	primary  core.Backend
	fallback core.Backend
	logger   *slog.Logger
	now      func() time.Time

	mu          sync.Mutex
	primaryBad  bool
	snapshot    *core.BoardState
	loads       int
	saves       int
	lastSource  string
	lastFailure string
}

// New builds a chain. primary and fallback may be nil; a nil primary counts
// as already marked bad.
func New(primary, fallback core.Backend, opts ...Option) *Chain {
	c := &Chain{
		primary:    primary,
		fallback:   fallback,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        core.Now,
		primaryBad: primary == nil,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the first usable state: primary, fallback, memory snapshot,
// then the default state. It never fails.
func (c *Chain) Load(ctx context.Context) core.BoardState {
	c.mu.Lock()
	c.loads++
	c.mu.Unlock()

	if c.primaryUsable() {
		if state, ok := c.loadFrom(ctx, c.primary, true); ok {
			return state
		}
	}
	if c.fallback != nil {
		if state, ok := c.loadFrom(ctx, c.fallback, false); ok {
			return state
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot != nil {
		c.lastSource = MemoryBackend
		return c.snapshot.Clone()
	}
	c.lastSource = "default"
	return core.DefaultState()
}

func (c *Chain) loadFrom(ctx context.Context, b core.Backend, primary bool) (core.BoardState, bool) {
	data, err := b.Read(ctx)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			c.logger.Debug("no stored state", "backend", b.Name())
			return core.BoardState{}, false
		}
		c.logger.Warn("state read failed", "backend", b.Name(), "error", err)
		if primary {
			c.markPrimaryBad(err)
		}
		return core.BoardState{}, false
	}

	state, err := core.DecodeState(data, c.now())
	if err != nil {
		c.logger.Warn("stored state unusable", "backend", b.Name(), "error", err)
		return core.BoardState{}, false
	}

	c.mu.Lock()
	c.lastSource = b.Name()
	c.mu.Unlock()
	return state, true
}

// Save writes state to memory, the primary (unless marked bad) and the
// fallback, in that order. Failures are logged and returned as results,
// never as an error.
func (c *Chain) Save(ctx context.Context, state core.BoardState) []Result {
	snapshot := state.Clone()
	snapshot.Version = core.StateVersion

	c.mu.Lock()
	c.saves++
	c.snapshot = &snapshot
	c.mu.Unlock()

	results := []Result{{Backend: MemoryBackend}}

	data, err := core.EncodeState(snapshot)
	if err != nil {
		c.logger.Error("state encode failed", "error", err)
		return append(results, Result{Backend: "encode", Err: err})
	}

	if c.primaryUsable() {
		err := c.primary.Write(ctx, data)
		if err != nil {
			c.logger.Warn("primary write failed, disabling for this session", "backend", c.primary.Name(), "error", err)
			c.markPrimaryBad(err)
		}
		results = append(results, Result{Backend: c.primary.Name(), Err: err})
	}

	if c.fallback != nil {
		err := c.fallback.Write(ctx, data)
		if err != nil {
			c.logger.Warn("fallback write failed", "backend", c.fallback.Name(), "error", err)
		}
		results = append(results, Result{Backend: c.fallback.Name(), Err: err})
	}
	return results
}

// PrimaryAvailable reports whether the primary is still in use.
func (c *Chain) PrimaryAvailable() bool {
	return c.primaryUsable()
}

// Snapshot returns a copy of the last saved state, if any.
func (c *Chain) Snapshot() (core.BoardState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot == nil {
		return core.BoardState{}, false
	}
	return c.snapshot.Clone(), true
}

// Close closes both backends.
func (c *Chain) Close() error {
	var errs []error
	if c.primary != nil {
		errs = append(errs, c.primary.Close())
	}
	if c.fallback != nil {
		errs = append(errs, c.fallback.Close())
	}
	return errors.Join(errs...)
}

func (c *Chain) primaryUsable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.primaryBad
}

func (c *Chain) markPrimaryBad(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.primaryBad = true
	c.lastFailure = err.Error()
}
