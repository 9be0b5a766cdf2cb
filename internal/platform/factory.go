// Package platform wires backends, the persistence chain and the board store
// into a ready application.
package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/introspection"
	goredis "github.com/redis/go-redis/v9"

	"github.com/aretw0/boardflow/pkg/adapters/bolt"
	"github.com/aretw0/boardflow/pkg/adapters/fs"
	bflifecycle "github.com/aretw0/boardflow/pkg/adapters/lifecycle"
	"github.com/aretw0/boardflow/pkg/adapters/redis"
	"github.com/aretw0/boardflow/pkg/adapters/sqlite"
	"github.com/aretw0/boardflow/pkg/board"
	"github.com/aretw0/boardflow/pkg/core"
	"github.com/aretw0/boardflow/pkg/persistence"
)

const (
	sqliteFile = "boardflow.db"
	boltFile   = "boardflow.bolt"

	redisPingTimeout = 2 * time.Second
)

// App is an opened board: the store plus the persistence it writes through.
type App struct {
	DataDir string
	Store   *board.Store
	Chain   *persistence.Chain

	primary  core.Backend
	fallback core.Backend
	logger   *slog.Logger
	source   *bflifecycle.Source
}

// Open builds the primary backend, the file fallback, the chain and the
// store for dataDir. A primary that fails to open is logged and left out;
// the board then runs on the fallback alone. The store is not hydrated.
func Open(dataDir string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	useTemp := o.forceTemp || (o.devSafety && IsDevRun())
	dir := ResolveDataDir(dataDir, useTemp)
	if useTemp && dir != filepath.Clean(dataDir) {
		logger.Warn("running in SAFE MODE (dev sandbox)", "original_path", dataDir, "resolved_path", dir)
	}

	primary, err := openPrimary(dir, o, logger)
	if err != nil {
		return nil, err
	}

	fallback := o.fallback
	if fallback == nil {
		fallback = fs.NewStore(fs.Config{Dir: dir, Key: o.stateKey, Logger: logger})
	}

	chainOpts := []persistence.Option{persistence.WithLogger(logger)}
	if o.clock != nil {
		chainOpts = append(chainOpts, persistence.WithClock(o.clock))
	}
	chain := persistence.New(primary, fallback, chainOpts...)

	storeOpts := []board.Option{
		board.WithLogger(logger),
		board.WithTouchInput(o.touchInput),
		board.WithClock(o.clock),
		board.WithLocation(o.location),
	}
	store := board.New(chain, storeOpts...)

	return &App{
		DataDir:  dir,
		Store:    store,
		Chain:    chain,
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}, nil
}

// openPrimary returns nil, not a typed nil, when no primary is available.
func openPrimary(dir string, o *options, logger *slog.Logger) (core.Backend, error) {
	if o.primary != nil {
		return o.primary, nil
	}

	var (
		b   core.Backend
		err error
	)
	switch o.adapter {
	case AdapterNone:
		return nil, nil
	case AdapterSQLite, "":
		var s *sqlite.Store
		if s, err = sqlite.Open(sqlite.Config{Path: filepath.Join(dir, sqliteFile), Key: o.stateKey, Logger: logger}); err == nil {
			b = s
		}
	case AdapterBolt:
		var s *bolt.Store
		if s, err = bolt.Open(bolt.Config{Path: filepath.Join(dir, boltFile), Key: o.stateKey, Logger: logger}); err == nil {
			b = s
		}
	case AdapterRedis:
		b, err = openRedis(o)
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownAdapter, o.adapter)
	}

	if err != nil {
		logger.Warn("primary backend unavailable, using fallback only", "adapter", o.adapter, "error", err)
		return nil, nil
	}
	return b, nil
}

func openRedis(o *options) (core.Backend, error) {
	client, owns := o.redisClient, false
	if client == nil {
		if o.redisAddr == "" {
			return nil, errors.New("redis: no client or address configured")
		}
		client = goredis.NewClient(&goredis.Options{Addr: o.redisAddr, DB: o.redisDB})
		owns = true
	}

	s, err := redis.New(redis.Config{Client: client, Key: o.stateKey, OwnsClient: owns})
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Watch reports external changes of the fallback file as a reload source
// for the scheduler. It fails when the fallback cannot be watched.
func (a *App) Watch(ctx context.Context) (*bflifecycle.Source, error) {
	w, ok := a.fallback.(core.Watchable)
	if !ok {
		return nil, fmt.Errorf("fallback %s does not support watching", a.fallback.Name())
	}
	events, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}
	opts := []bflifecycle.Option{bflifecycle.WithLogger(a.logger)}
	if k, ok := a.fallback.(interface{ Key() string }); ok {
		opts = append(opts, bflifecycle.WithKey(k.Key()))
	}
	a.source = bflifecycle.NewSource(events, opts...)
	return a.source, nil
}

// Components lists the parts of the app that report their state: the
// store, the chain, every backend that supports introspection and, once
// Watch was called, the reload source.
func (a *App) Components() []introspection.Component {
	comps := []introspection.Component{a.Store, a.Chain}
	for _, b := range []core.Backend{a.primary, a.fallback} {
		if c, ok := b.(introspection.Component); ok {
			comps = append(comps, c)
		}
	}
	if a.source != nil {
		comps = append(comps, a.source)
	}
	return comps
}

// Close waits for pending saves and closes every backend.
func (a *App) Close() error {
	a.Store.Wait()
	if err := a.Chain.Close(); err != nil {
		return fmt.Errorf("failed to close backends: %w", err)
	}
	return nil
}
