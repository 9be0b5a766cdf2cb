package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow/pkg/board"
	"github.com/aretw0/boardflow/pkg/core"
)

var (
	watchInterval        time.Duration
	watchArchiveInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print reminders as they fall due",
	Long: `Run until interrupted. Due reminders are printed to stdout and marked
sent; past-week notes are archived when auto-archive is on. Changes made by
other processes to the board file are picked up.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := openApp(ctx)
		if err != nil {
			fatal("Failed to open board", err)
		}
		defer app.Close()

		opts := []board.SchedulerOption{
			board.WithInterval(watchInterval),
			board.WithArchiveInterval(watchArchiveInterval),
			board.WithSchedulerLogger(slog.Default()),
		}
		if src, err := app.Watch(ctx); err != nil {
			slog.Warn("external changes will not be picked up", "error", err)
		} else {
			opts = append(opts, board.WithReload(src))
		}

		notifier := board.NotifierFunc(func(ctx context.Context, n core.Note) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", time.Now().Format(reminderLayout), formatNote(n))
			return err
		})

		slog.Info("watching board", "dir", app.DataDir, "interval", watchInterval)
		if err := board.NewScheduler(app.Store, notifier, opts...).Run(ctx); err != nil {
			slog.Error("scheduler stopped", "error", err)
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", board.DefaultReminderInterval, "How often reminders are checked")
	watchCmd.Flags().DurationVar(&watchArchiveInterval, "archive-interval", board.DefaultArchiveInterval, "How often auto-archive runs")
	rootCmd.AddCommand(watchCmd)
}
