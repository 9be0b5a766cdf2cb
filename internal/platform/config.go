package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable overriding the config path.
const ConfigEnv = "BOARDFLOW_CONFIG"

// RedisConfig holds the connection settings of the "redis" adapter.
type RedisConfig struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

// Config is the on-disk configuration file.
type Config struct {
	DataDir    string      `yaml:"data_dir"`
	Adapter    string      `yaml:"adapter"`
	StateKey   string      `yaml:"state_key"`
	TouchInput bool        `yaml:"touch_input"`
	LogLevel   string      `yaml:"log_level"`
	Redis      RedisConfig `yaml:"redis"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Adapter:  AdapterSQLite,
		LogLevel: "info",
	}
}

// DefaultConfigPath returns $BOARDFLOW_CONFIG, or config.yaml under the
// user config directory.
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "boardflow", "config.yaml"), nil
}

// LoadConfig reads the YAML file at path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	return cfg, nil
}

// Options converts the file settings into app options.
func (c Config) Options() []Option {
	opts := []Option{
		WithTouchInput(c.TouchInput),
	}
	if c.Adapter != "" {
		opts = append(opts, WithAdapter(c.Adapter))
	}
	if c.StateKey != "" {
		opts = append(opts, WithStateKey(c.StateKey))
	}
	if c.Redis.Addr != "" {
		opts = append(opts, WithRedisAddr(c.Redis.Addr, c.Redis.DB))
	}
	return opts
}

// Level maps log_level to a slog level. Unknown values mean info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
