package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow"
	"github.com/aretw0/boardflow/pkg/board"
)

var (
	verbose    bool
	dataDir    string
	configPath string
	adapter    string

	cfg boardflow.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "boardflow",
	Short: "A local-first sticky-note board for teachers",
	Long: `BoardFlow keeps class notes, reminders and week plans on a board
stored on this machine. Every change is saved to a transactional database
with a plain JSON file as fallback.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			p, err := boardflow.DefaultConfigPath()
			if err == nil {
				path = p
			}
		}
		loaded, err := boardflow.LoadConfig(path)
		if err != nil {
			fatal("Failed to load config", err)
		}
		cfg = loaded

		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Board data directory (default: nearest .boardflow, then ~/.boardflow)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $BOARDFLOW_CONFIG or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Primary backend: sqlite, bolt, redis or none")
}

// resolveDataDir picks the flag, then the config file, then the nearest
// .boardflow directory, then ~/.boardflow.
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, err := boardflow.FindDataDir(wd); err == nil {
		return found, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".boardflow"), nil
}

func openApp(ctx context.Context) (*boardflow.App, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}

	opts := append(cfg.Options(), boardflow.WithLogger(slog.Default()))
	if adapter != "" {
		opts = append(opts, boardflow.WithAdapter(adapter))
	}

	app, err := boardflow.Open(dir, opts...)
	if err != nil {
		return nil, err
	}
	if err := app.Store.Hydrate(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// withStore opens the board, runs fn and waits for its saves before
// closing. Errors end the process.
func withStore(fn func(ctx context.Context, store *board.Store) error) {
	ctx := context.Background()
	app, err := openApp(ctx)
	if err != nil {
		fatal("Failed to open board", err)
	}

	runErr := fn(ctx, app.Store)
	if err := app.Close(); err != nil {
		slog.Warn("close failed", "error", err)
	}
	if runErr != nil {
		fatal("Error", runErr)
	}
}
