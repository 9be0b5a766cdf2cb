package boardflow_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aretw0/boardflow"
)

// Example_basic demonstrates how to open a board, add a note from quick
// input and read it back after reopening.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "boardflow-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	now := func() time.Time { return time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC) }
	opts := []boardflow.Option{boardflow.WithClock(now), boardflow.WithLocation(time.UTC)}

	app, err := boardflow.Open(tmpDir, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Store.Hydrate(context.Background()); err != nil {
		log.Fatal(err)
	}

	note := app.Store.CreateFromQuickInput("8B prov 12/3 boka sal hög")
	if err := app.Close(); err != nil {
		log.Fatal(err)
	}

	reopened, err := boardflow.Open(tmpDir, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer reopened.Close()
	if err := reopened.Store.Hydrate(context.Background()); err != nil {
		log.Fatal(err)
	}

	got, _ := reopened.Store.Note(note.ID)
	fmt.Printf("%s [%s] %s week %d\n", got.Title, got.ClassTag, got.Priority, *got.WeekNumber)
	// Output:
	// prov boka sal [8B] high week 11
}

// ExampleLoadConfig shows that a missing config file yields the defaults.
func ExampleLoadConfig() {
	cfg, err := boardflow.LoadConfig("/nonexistent/boardflow.yaml")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cfg.Adapter)
	// Output:
	// sqlite
}
