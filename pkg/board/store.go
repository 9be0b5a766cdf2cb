// Package board holds the live board state and applies every user
// operation to it.
//
// Each mutation computes the next state with the pure functions of
// package core, swaps it in under a lock and hands a full snapshot to the
// Persister in the background. Saves are never awaited by the caller; use
// Wait before exiting to let them finish. Every mutation is written, one at
// a time and in the order the mutations happened.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/boardflow/pkg/core"
	"github.com/aretw0/boardflow/pkg/persistence"
)

// ErrAlreadyHydrated is returned by a second call to Hydrate.
var ErrAlreadyHydrated = errors.New("board already hydrated")

// Persister loads and saves whole board states.
type Persister interface {
	Load(ctx context.Context) core.BoardState
	Save(ctx context.Context, state core.BoardState) []persistence.Result
}

// Store owns the board state.
type Store struct {
	persister Persister
	logger    *slog.Logger
	now       func() time.Time
	loc       *time.Location
	touch     bool
	ctx       context.Context

	mu       sync.RWMutex
	state    core.BoardState
	hydrated bool

	saveMu   sync.Mutex
	queue    []core.BoardState // guarded by saveMu
	draining bool              // guarded by saveMu

	pending      sync.WaitGroup
	inFlight     atomic.Int64
	saves        atomic.Int64
	saveFailures atomic.Int64
}

// New creates a store holding the default state. Call Hydrate to load the
// persisted one.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
		loc:       time.Local,
		ctx:       context.Background(),
		state:     core.DefaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate loads the persisted state, runs the auto-archive pass when the
// setting is on, and marks the store ready. It may be called once.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.Hydrated() {
		return ErrAlreadyHydrated
	}
	loaded := s.persister.Load(ctx)

	s.mu.Lock()
	if s.hydrated {
		s.mu.Unlock()
		return ErrAlreadyHydrated
	}
	archived := s.install(loaded)
	s.hydrated = true
	if archived > 0 {
		s.enqueueSave()
	}
	s.mu.Unlock()

	s.logger.Debug("board hydrated", "notes", len(loaded.Notes), "archived", archived)
	return nil
}

// Reload replaces the live state with the persisted one, for example after
// another process changed it. Nothing is saved unless auto-archive changed
// notes.
func (s *Store) Reload(ctx context.Context) {
	loaded := s.persister.Load(ctx)

	s.mu.Lock()
	archived := s.install(loaded)
	s.hydrated = true
	if archived > 0 {
		s.enqueueSave()
	}
	s.mu.Unlock()

	s.logger.Debug("board reloaded", "notes", len(loaded.Notes))
}

// install must be called with mu held.
func (s *Store) install(loaded core.BoardState) int {
	archived := 0
	notes := loaded.Notes
	if loaded.Settings.AutoArchivePastWeeks {
		notes, archived = core.ArchivePastWeeks(notes, s.currentWeek(), s.timestamp())
	}
	loaded.Notes = core.SortByUpdatedAtDesc(notes)
	s.state = loaded
	return archived
}

// Hydrated reports whether Hydrate has completed.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Wait blocks until every save started so far has finished.
func (s *Store) Wait() {
	s.pending.Wait()
}

// mutate applies fn under the write lock and, when fn reports a change,
// saves the resulting state.
func (s *Store) mutate(fn func(st *core.BoardState) bool) bool {
	s.mu.Lock()
	if !fn(&s.state) {
		s.mu.Unlock()
		return false
	}
	s.enqueueSave()
	s.mu.Unlock()
	return true
}

// persistable must be called with mu held.
func (s *Store) persistable() core.BoardState {
	snap := s.state.Clone()
	snap.Version = core.StateVersion
	snap.Notes = core.SortByUpdatedAtDesc(snap.Notes)
	return snap
}

// enqueueSave must be called with mu held, which keeps the queue in
// mutation order. A single writer drains it in the background.
func (s *Store) enqueueSave() {
	snap := s.persistable()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	s.queue = append(s.queue, snap)
	s.pending.Add(1)
	s.inFlight.Add(1)
	if s.draining {
		return
	}
	s.draining = true
	lifecycle.Go(s.ctx, s.drain, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("save writer stopped", "error", err)
	}))
}

func (s *Store) drain(ctx context.Context) error {
	for {
		s.saveMu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.saveMu.Unlock()
			return nil
		}
		snap := s.queue[0]
		s.queue[0] = core.BoardState{}
		s.queue = s.queue[1:]
		s.saveMu.Unlock()

		s.write(ctx, snap)
	}
}

func (s *Store) write(ctx context.Context, snap core.BoardState) {
	defer s.pending.Done()
	defer s.inFlight.Add(-1)
	defer func() {
		if r := recover(); r != nil {
			s.saveFailures.Add(1)
			s.logger.Error("save panicked", "panic", r)
		}
	}()

	s.saves.Add(1)
	var failed []error
	for _, r := range s.persister.Save(ctx, snap) {
		if !r.OK() {
			failed = append(failed, fmt.Errorf("%s: %w", r.Backend, r.Err))
		}
	}
	if len(failed) > 0 {
		s.saveFailures.Add(1)
		s.logger.Debug("save degraded", "error", errors.Join(failed...))
	}
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Store) currentWeek() int {
	return core.ISOWeek(s.now().In(s.loc))
}

// Export returns the full persisted document as indented JSON.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	snap := s.persistable()
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export board: %w", err)
	}
	return data, nil
}

// Import merges notes from a JSON payload holding either a bare note array
// or an object with a "notes" array. Invalid JSON counts as one invalid
// entry and changes nothing; any other shape imports nothing.
func (s *Store) Import(payload []byte) core.ImportSummary {
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		s.logger.Debug("import rejected", "error", err)
		return core.ImportSummary{Invalid: 1}
	}

	var incoming []any
	switch v := raw.(type) {
	case []any:
		incoming = v
	case map[string]any:
		incoming, _ = v["notes"].([]any)
	}

	var summary core.ImportSummary
	s.mutate(func(st *core.BoardState) bool {
		st.Notes, summary = core.MergeImported(st.Notes, incoming, s.timestamp())
		if !st.Settings.AdminDesign.SelectedModule.Valid() {
			st.Settings.AdminDesign.SelectedModule = core.ModuleTopbar
		}
		return true
	})
	return summary
}
