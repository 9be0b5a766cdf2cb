package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow/pkg/board"
	"github.com/aretw0/boardflow/pkg/core"
)

var (
	exportOut   string
	archiveWeek int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole board as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			data, err := store.Export()
			if err != nil {
				return err
			}
			if exportOut == "" {
				_, err = os.Stdout.Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(exportOut, data, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Exported to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file|glob]...",
	Short: "Merge notes from exported JSON files",
	Long: `Merge notes from one or more files. Patterns such as "backups/**/*.json"
are expanded. Notes whose id already exists are imported under a new id.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		files, err := expandPatterns(args)
		if err != nil {
			fatal("Invalid pattern", err)
		}
		if len(files) == 0 {
			fatal("Nothing to import", fmt.Errorf("no file matches %v", args))
		}

		withStore(func(ctx context.Context, store *board.Store) error {
			var total core.ImportSummary
			for _, file := range files {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", file, err)
				}
				s := store.Import(data)
				slog.Debug("imported", "file", file, "added", s.Added, "conflicts", s.Conflicts, "invalid", s.Invalid)
				total.Added += s.Added
				total.Conflicts += s.Conflicts
				total.Invalid += s.Invalid
			}
			fmt.Printf("Imported %d notes (%d renamed, %d invalid) from %d files\n",
				total.Added, total.Conflicts, total.Invalid, len(files))
			return nil
		})
	},
}

// expandPatterns resolves every glob argument; plain paths pass through.
func expandPatterns(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, arg := range args {
		matches := []string{arg}
		if doublestar.ValidatePathPattern(arg) && hasMeta(arg) {
			var err error
			matches, err = doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, err
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive notes whose weeks have all passed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			n := store.RunAutoArchive(archiveWeek)
			fmt.Printf("Archived %d notes\n", n)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
	archiveCmd.Flags().IntVar(&archiveWeek, "week", 0, "Treat this ISO week as current")
	rootCmd.AddCommand(exportCmd, importCmd, archiveCmd)
}
