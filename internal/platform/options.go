package platform

import (
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aretw0/boardflow/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterSQLite = "sqlite"
	AdapterBolt   = "bolt"
	AdapterRedis  = "redis"
	AdapterNone   = "none"
)

// options holds the internal configuration for a BoardFlow app.
type options struct {
	adapter     string
	logger      *slog.Logger
	clock       func() time.Time
	location    *time.Location
	touchInput  bool
	stateKey    string
	redisClient *goredis.Client
	redisAddr   string
	redisDB     int
	primary     core.Backend
	fallback    core.Backend
	forceTemp   bool
	devSafety   bool
}

// Option defines a functional option for configuring an app.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:   AdapterSQLite,
		devSafety: true,
	}
}

// WithAdapter selects the primary backend by name: "sqlite" (default),
// "bolt", "redis" or "none".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithLogger sets the logger shared by the store, chain and backends.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the time source of the store and the chain.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithLocation sets the zone used for quick-input dates and the current week.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// WithTouchInput places new notes at the touch position.
func WithTouchInput(touch bool) Option {
	return func(o *options) {
		o.touchInput = touch
	}
}

// WithStateKey overrides the key the state is stored under in every backend.
func WithStateKey(key string) Option {
	return func(o *options) {
		o.stateKey = key
	}
}

// WithRedisClient uses an existing client for the "redis" adapter. The app
// does not close it.
func WithRedisClient(client *goredis.Client) Option {
	return func(o *options) {
		o.redisClient = client
	}
}

// WithRedisAddr makes the "redis" adapter dial addr and select db.
func WithRedisAddr(addr string, db int) Option {
	return func(o *options) {
		o.redisAddr = addr
		o.redisDB = db
	}
}

// WithPrimary injects a primary backend, skipping the adapter.
func WithPrimary(b core.Backend) Option {
	return func(o *options) {
		o.primary = b
	}
}

// WithFallback replaces the file fallback.
func WithFallback(b core.Backend) Option {
	return func(o *options) {
		o.fallback = b
	}
}

// WithForceTemp forces the data directory into the system temp directory.
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or
// `go test`. By default (true) the data directory is re-rooted under the
// system temp directory in those cases so a development run never touches a
// real board.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
