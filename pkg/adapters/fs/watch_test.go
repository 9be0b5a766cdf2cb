package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boardflow/pkg/adapters/fs"
	"github.com/aretw0/boardflow/pkg/core"
)

func waitEvent(t *testing.T, events <-chan core.Event, timeout time.Duration) (core.Event, bool) {
	t.Helper()
	select {
	case e, ok := <-events:
		return e, ok
	case <-time.After(timeout):
		return core.Event{}, false
	}
}

func TestWatch(t *testing.T) {
	t.Run("Reports External Writes", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dir := t.TempDir()
		store := fs.NewStore(fs.Config{Dir: dir, Key: "board"})
		require.NoError(t, store.Write(ctx, []byte(`{"version":1}`)))

		events, err := store.Watch(ctx)
		require.NoError(t, err)

		// Unrelated files are ignored.
		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
		require.NoError(t, os.WriteFile(store.Path(), []byte(`{"version":1,"notes":[]}`), 0644))

		e, ok := waitEvent(t, events, 2*time.Second)
		require.True(t, ok, "expected an event")
		assert.Equal(t, "board", e.ID)
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
	})

	t.Run("Ignores Own Writes", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store := fs.NewStore(fs.Config{Dir: t.TempDir()})
		events, err := store.Watch(ctx)
		require.NoError(t, err)

		require.NoError(t, store.Write(ctx, []byte(`{"version":1}`)))

		_, ok := waitEvent(t, events, 300*time.Millisecond)
		assert.False(t, ok, "own write must not be reported")
	})

	t.Run("Closes On Cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		store := fs.NewStore(fs.Config{Dir: t.TempDir()})
		events, err := store.Watch(ctx)
		require.NoError(t, err)

		cancel()
		for {
			_, ok := waitEvent(t, events, 2*time.Second)
			if !ok {
				break
			}
		}
		assert.Eventually(t, func() bool {
			return !store.State().(fs.StoreState).WatcherActive
		}, time.Second, 10*time.Millisecond)
	})
}
