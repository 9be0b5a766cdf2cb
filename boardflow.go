package boardflow

import (
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aretw0/boardflow/internal/platform"
	"github.com/aretw0/boardflow/pkg/core"
)

// Version is the release of the library and CLI.
const Version = "0.4.0"

// --- Types ---

// App is an opened board. See platform.App.
type App = platform.App

// Config is the YAML configuration file.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring BoardFlow.
type Option = platform.Option

// Adapter names.
const (
	AdapterSQLite = platform.AdapterSQLite
	AdapterBolt   = platform.AdapterBolt
	AdapterRedis  = platform.AdapterRedis
	AdapterNone   = platform.AdapterNone
)

// WithAdapter selects the primary backend by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithLogger sets the logger for the store and persistence.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithLocation sets the zone used for dates typed by the user.
func WithLocation(loc *time.Location) Option {
	return platform.WithLocation(loc)
}

// WithTouchInput places new notes at the touch position.
func WithTouchInput(touch bool) Option {
	return platform.WithTouchInput(touch)
}

// WithStateKey overrides the storage key.
func WithStateKey(key string) Option {
	return platform.WithStateKey(key)
}

// WithRedisClient uses an existing client for the "redis" adapter.
func WithRedisClient(client *goredis.Client) Option {
	return platform.WithRedisClient(client)
}

// WithRedisAddr makes the "redis" adapter dial addr.
func WithRedisAddr(addr string, db int) Option {
	return platform.WithRedisAddr(addr, db)
}

// WithPrimary injects a custom primary backend.
func WithPrimary(b core.Backend) Option {
	return platform.WithPrimary(b)
}

// WithFallback replaces the file fallback.
func WithFallback(b core.Backend) Option {
	return platform.WithFallback(b)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the sandbox applied under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// Open builds the store and its persistence for dataDir. Call
// App.Store.Hydrate before use and App.Close when done.
func Open(dataDir string, opts ...Option) (*App, error) {
	return platform.Open(dataDir, opts...)
}

// LoadConfig reads a YAML config file; a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// DefaultConfigPath returns where LoadConfig looks by default.
func DefaultConfigPath() (string, error) {
	return platform.DefaultConfigPath()
}

// --- Safety & Utils ---

// FindDataDir looks upwards for a .boardflow directory.
func FindDataDir(startDir string) (string, error) {
	return platform.FindDataDir(startDir)
}

// ResolveDataDir determines the directory actually used based on safety rules.
func ResolveDataDir(userPath string, forceTemp bool) string {
	return platform.ResolveDataDir(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
