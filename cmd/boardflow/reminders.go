package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow/pkg/board"
	"github.com/aretw0/boardflow/pkg/core"
)

var remindersJSON bool

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Inspect and acknowledge reminders",
}

var remindersDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List reminders that should fire now",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			due := store.DueReminders(time.Now())
			if remindersJSON {
				return printJSON(os.Stdout, due)
			}
			printNotes(os.Stdout, due)
			return nil
		})
	},
}

// markerCmd builds a subcommand applying one reminder marker operation.
func markerCmd(use, short string, apply func(store *board.Store, id string)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(ctx context.Context, store *board.Store) error {
				if _, ok := store.Note(args[0]); !ok {
					return fmt.Errorf("note %s: %w", args[0], core.ErrNotFound)
				}
				apply(store, args[0])
				return nil
			})
		},
	}
}

func init() {
	remindersDueCmd.Flags().BoolVar(&remindersJSON, "json", false, "Output in JSON format")
	remindersCmd.AddCommand(
		remindersDueCmd,
		markerCmd("dismiss", "Hide a reminder until it is rescheduled", (*board.Store).DismissReminder),
		markerCmd("sent", "Mark a reminder as delivered", (*board.Store).MarkReminderSent),
		markerCmd("clear", "Let a reminder fire again", (*board.Store).ClearReminderMarkers),
	)
	rootCmd.AddCommand(remindersCmd)
}
