// Package boardflow is the Composition Root for BoardFlow, a local-first
// sticky-note board for teachers.
//
// It connects the board domain (package core and the board store) with the
// persistence adapters using the Hexagonal Architecture pattern.
//
// Persistence:
//
// Every change is written as one full snapshot through a chain of backends:
// an in-memory copy, a transactional primary (SQLite by default, bbolt or
// Redis on request) and a plain JSON file as fallback. A primary that fails
// is skipped for the rest of the session; the board keeps working on the
// file alone.
//
// Usage:
//
//	app, err := boardflow.Open("./.boardflow",
//		boardflow.WithAdapter(boardflow.AdapterSQLite),
//		boardflow.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	if err := app.Store.Hydrate(ctx); err != nil {
//		return err
//	}
//	note := app.Store.CreateFromQuickInput("8B prov 12/3 boka sal hög")
package boardflow
