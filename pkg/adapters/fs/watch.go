package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/boardflow/pkg/core"
)

// debounceWindow coalesces the burst of events a single save produces.
const debounceWindow = 50 * time.Millisecond

// Watch reports changes of the state file made by other processes. The
// channel is closed when ctx is done. Changes that reproduce this store's
// last write are not reported.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	events := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return s.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event) error {
	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	var pending *core.Event

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			s.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			eType := s.mapEventType(event)
			if eType == "" {
				continue
			}
			pending = &core.Event{Type: eType, ID: s.key, Timestamp: time.Now().Unix()}
			timer.Reset(debounceWindow)

		case <-timer.C:
			if pending == nil {
				continue
			}
			e := *pending
			pending = nil
			if e.Type != core.EventDelete && s.unchanged() {
				continue
			}
			select {
			case events <- e:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher errors channel closed")
			}
			s.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// mapEventType filters events down to the state file and names them.
// Temp files from atomic writes are ignored; their rename shows up as a
// create of the state file itself.
func (s *Store) mapEventType(event fsnotify.Event) core.EventType {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) || filepath.Clean(event.Name) != filepath.Clean(s.path) {
		return ""
	}
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

func (s *Store) unchanged() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	return s.ownWrite(data)
}
