package redis_test

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boardflow/pkg/adapters/redis"
	"github.com/aretw0/boardflow/pkg/core"
)

func newStore(t *testing.T, key string) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	store, err := redis.New(redis.Config{Client: client, Key: key, OwnsClient: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip Without Expiry", func(t *testing.T) {
		store, mr := newStore(t, "")
		require.NoError(t, store.Ping(ctx))

		_, err := store.Read(ctx)
		require.ErrorIs(t, err, core.ErrNotFound)

		require.NoError(t, store.Write(ctx, []byte(`{"version":1}`)))

		got, err := store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, `{"version":1}`, string(got))

		raw, err := mr.Get(redis.DefaultKey)
		require.NoError(t, err)
		assert.Equal(t, `{"version":1}`, raw)
		assert.Zero(t, mr.TTL(redis.DefaultKey))
	})

	t.Run("Server Down Is An Error", func(t *testing.T) {
		store, mr := newStore(t, "board")
		mr.Close()

		err := store.Write(ctx, []byte("{}"))
		assert.Error(t, err)
		_, err = store.Read(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("Requires Client", func(t *testing.T) {
		_, err := redis.New(redis.Config{})
		assert.Error(t, err)
	})
}
