package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/boardflow"
	"github.com/aretw0/boardflow/pkg/board"
)

func main() {
	count := flag.Int("count", 500, "Number of notes to create")
	keep := flag.Bool("keep", false, "Keep the benchmark boards after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "boardflow_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	for _, adapter := range []string{boardflow.AdapterSQLite, boardflow.AdapterBolt, boardflow.AdapterNone} {
		dir := filepath.Join(benchDir, adapter)
		write, load := run(dir, adapter, *count, logger)
		fmt.Printf("  %-7s create+save: %-14v hydrate: %v\n", adapter, write, load)
	}
	fmt.Printf("--------------------------------------------------\n")
}

// run creates count notes, each saving the whole board, then reopens the
// board and times the hydrate.
func run(dir, adapter string, count int, logger *slog.Logger) (time.Duration, time.Duration) {
	ctx := context.Background()

	app := open(ctx, dir, adapter, logger)
	start := time.Now()
	for i := 0; i < count; i++ {
		week := i%52 + 1
		app.Store.CreateNote(board.NoteDraft{
			Title:      fmt.Sprintf("Note %d", i),
			Body:       "Benchmark note.",
			ClassTag:   fmt.Sprintf("%dA", i%9+1),
			WeekNumber: &week,
		})
	}
	if err := app.Close(); err != nil {
		panic(err)
	}
	write := time.Since(start)

	start = time.Now()
	reopened := open(ctx, dir, adapter, logger)
	load := time.Since(start)
	if got := len(reopened.Store.Notes()); got != count {
		panic(fmt.Sprintf("%s: reloaded %d notes, want %d", adapter, got, count))
	}
	_ = reopened.Close()

	return write, load
}

func open(ctx context.Context, dir, adapter string, logger *slog.Logger) *boardflow.App {
	app, err := boardflow.Open(dir, boardflow.WithAdapter(adapter), boardflow.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	if err := app.Store.Hydrate(ctx); err != nil {
		panic(err)
	}
	return app
}
