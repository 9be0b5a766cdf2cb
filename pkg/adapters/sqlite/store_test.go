package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boardflow/pkg/adapters/sqlite"
	"github.com/aretw0/boardflow/pkg/core"
)

func openStore(t *testing.T, path, key string) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(sqlite.Config{Path: path, Key: key})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent Key Is Not Found", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "board.db"), "")

		_, err := store.Read(ctx)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("Upsert Replaces Value", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "db", "board.db"), "")

		require.NoError(t, store.Write(ctx, []byte(`{"version":1}`)))
		require.NoError(t, store.Write(ctx, []byte(`{"version":1,"notes":[]}`)))

		got, err := store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, `{"version":1,"notes":[]}`, string(got))

		state := store.State().(sqlite.StoreState)
		assert.Equal(t, 2, state.Writes)
		assert.NotNil(t, state.LastWrite)
	})

	t.Run("Keys Are Isolated And Durable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "board.db")
		a := openStore(t, path, "a")
		require.NoError(t, a.Write(ctx, []byte("A")))
		require.NoError(t, a.Close())

		b := openStore(t, path, "b")
		_, err := b.Read(ctx)
		assert.ErrorIs(t, err, core.ErrNotFound)
		require.NoError(t, b.Close())

		again := openStore(t, path, "a")
		got, err := again.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A", string(got))
	})

	t.Run("Closed Store Fails", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "board.db"), "")
		require.NoError(t, store.Close())

		assert.Error(t, store.Write(ctx, []byte("{}")))
		_, err := store.Read(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("Requires Path", func(t *testing.T) {
		_, err := sqlite.Open(sqlite.Config{})
		assert.Error(t, err)
	})
}
