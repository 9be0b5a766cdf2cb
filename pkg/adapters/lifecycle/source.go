// Package lifecycle exposes backend change events as a lifecycle.Source
// that triggers board reloads.
package lifecycle

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle"

	"github.com/aretw0/boardflow/pkg/core"
)

// Source turns the change events of a Watchable backend into reload
// requests.
//
// A reload reads the whole board, so at most one request is pending at a
// time: events arriving while one is queued are folded into it. Deletions
// are dropped because the store keeps its last state in memory and the
// next save recreates the file.
type Source struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	key    string
	logger *slog.Logger

	forwarded atomic.Int64
	coalesced atomic.Int64
	ignored   atomic.Int64
}

// Option configures a Source.
type Option func(*Source)

// WithKey forwards only events about the given state key.
func WithKey(key string) Option {
	return func(s *Source) {
		s.key = key
	}
}

// WithLogger sets the logger used for dropped events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSource creates a Source over events.
func NewSource(events <-chan core.Event, opts ...Option) *Source {
	s := &Source{
		events: events,
		out:    make(chan lifecycle.Event, 1),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Events returns the reload requests. The channel is closed when the input
// closes or the context given to Start is done.
func (s *Source) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done.
func (s *Source) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				s.forward(e)
			}
		}
	})
	return nil
}

func (s *Source) forward(e core.Event) {
	if e.Type == core.EventDelete || (s.key != "" && e.ID != s.key) {
		s.ignored.Add(1)
		s.logger.Debug("change ignored", "event", e.String())
		return
	}
	select {
	case s.out <- e:
		s.forwarded.Add(1)
	default:
		s.coalesced.Add(1)
	}
}

// SourceState is the introspection snapshot of a Source.
type SourceState struct {
	Key       string `json:"key,omitempty"`
	Forwarded int64  `json:"forwarded"`
	Coalesced int64  `json:"coalesced"`
	Ignored   int64  `json:"ignored"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	return SourceState{
		Key:       s.key,
		Forwarded: s.forwarded.Load(),
		Coalesced: s.coalesced.Load(),
		Ignored:   s.ignored.Load(),
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string { return "reload-source" }

var _ lifecycle.Source = (*Source)(nil)
var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)
