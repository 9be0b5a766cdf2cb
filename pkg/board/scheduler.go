package board

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/boardflow/pkg/core"
)

const (
	DefaultReminderInterval = time.Minute
	DefaultArchiveInterval  = time.Hour
)

// Notifier delivers a due reminder.
type Notifier interface {
	Notify(ctx context.Context, note core.Note) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, note core.Note) error

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, note core.Note) error {
	return f(ctx, note)
}

// ReloadSource emits an event whenever the persisted state changed outside
// this process.
type ReloadSource interface {
	Start(ctx context.Context) error
	Events() <-chan lifecycle.Event
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithInterval sets how often due reminders are checked.
func WithInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithArchiveInterval sets how often the auto-archive pass runs.
func WithArchiveInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.archiveInterval = d
		}
	}
}

// WithReload reloads the store on every event of src.
func WithReload(src ReloadSource) SchedulerOption {
	return func(s *Scheduler) {
		s.reload = src
	}
}

// WithSchedulerLogger sets the scheduler logger.
func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scheduler delivers due reminders and runs auto-archive periodically.
type Scheduler struct {
	store           *Store
	notifier        Notifier
	interval        time.Duration
	archiveInterval time.Duration
	reload          ReloadSource
	logger          *slog.Logger
}

// NewScheduler creates a scheduler over store.
func NewScheduler(store *Store, notifier Notifier, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		store:           store,
		notifier:        notifier,
		interval:        DefaultReminderInterval,
		archiveInterval: DefaultArchiveInterval,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run checks reminders and archives immediately, then on every tick, until
// ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	var reloads <-chan lifecycle.Event
	if s.reload != nil {
		if err := s.reload.Start(ctx); err != nil {
			return fmt.Errorf("failed to start reload source: %w", err)
		}
		reloads = s.reload.Events()
	}

	reminders := time.NewTicker(s.interval)
	defer reminders.Stop()
	archive := time.NewTicker(s.archiveInterval)
	defer archive.Stop()

	s.archive()
	s.deliver(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reminders.C:
			s.deliver(ctx)
		case <-archive.C:
			s.archive()
		case e, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			s.logger.Debug("external change, reloading", "event", fmt.Sprint(e))
			s.store.Reload(ctx)
			s.deliver(ctx)
		}
	}
}

// deliver notifies every due reminder and marks the delivered ones sent.
// A failed delivery stays due and is retried on the next tick.
func (s *Scheduler) deliver(ctx context.Context) int {
	delivered := 0
	for _, n := range s.store.DueReminders(s.store.now()) {
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.logger.Warn("reminder delivery failed", "id", n.ID, "error", err)
			continue
		}
		s.store.MarkReminderSent(n.ID)
		delivered++
	}
	return delivered
}

func (s *Scheduler) archive() int {
	if !s.store.AutoArchiveEnabled() {
		return 0
	}
	return s.store.RunAutoArchive(0)
}
