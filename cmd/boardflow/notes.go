package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow/pkg/board"
	"github.com/aretw0/boardflow/pkg/core"
)

var (
	noteTitle    string
	noteBody     string
	noteColor    string
	noteClass    string
	notePriority string
	noteStatus   string
	noteReminder string
	noteWeeks    []int
	noteX        int
	noteY        int
	noClear      bool
	showJSON     bool
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Create a note from quick input",
	Long: `Create a note from one line of text. A class tag (8B), a date (12/3 or
03-05) and a priority word (hög, medel, låg, p1..p3) are picked out; the
rest becomes the title and body.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			n := store.CreateFromQuickInput(strings.Join(args, " "))
			fmt.Println(formatNote(n))
			return nil
		})
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note from flags",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		draft := board.NoteDraft{
			Title:       noteTitle,
			Body:        noteBody,
			Color:       core.Color(noteColor),
			ClassTag:    noteClass,
			Priority:    core.Priority(notePriority),
			Status:      core.Status(noteStatus),
			WeekNumbers: noteWeeks,
		}
		if noteReminder != "" {
			at, err := parseReminder(noteReminder)
			if err != nil {
				fatal("Invalid flag", err)
			}
			draft.ReminderAt = &at
		}
		if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
			draft.Position = &core.Position{X: noteX, Y: noteY}
		}

		withStore(func(ctx context.Context, store *board.Store) error {
			fmt.Println(formatNote(store.CreateNote(draft)))
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			n, ok := store.Note(args[0])
			if !ok {
				return fmt.Errorf("note %s: %w", args[0], core.ErrNotFound)
			}
			if showJSON {
				return printJSON(os.Stdout, n)
			}
			fmt.Println(formatNote(n))
			if n.Body != "" {
				fmt.Println()
				fmt.Println(n.Body)
			}
			return nil
		})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change fields of a note",
	Long:  `Only the flags given are changed. Changing the reminder lets it fire again.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		var patch board.NotePatch
		if flags.Changed("title") {
			patch.Title = &noteTitle
		}
		if flags.Changed("body") {
			patch.Body = &noteBody
		}
		if flags.Changed("color") {
			c := core.Color(noteColor)
			patch.Color = &c
		}
		if flags.Changed("class") {
			patch.ClassTag = &noteClass
		}
		if flags.Changed("priority") {
			p := core.Priority(notePriority)
			patch.Priority = &p
		}
		if flags.Changed("status") {
			s := core.Status(noteStatus)
			patch.Status = &s
		}
		if flags.Changed("week") {
			patch.WeekNumbers = append([]int{}, noteWeeks...)
		}
		if flags.Changed("reminder") {
			at, err := parseReminder(noteReminder)
			if err != nil {
				fatal("Invalid flag", err)
			}
			patch.ReminderAt = &at
		}
		patch.ClearReminder = noClear

		withStore(func(ctx context.Context, store *board.Store) error {
			if !store.UpdateNote(args[0], patch) {
				return fmt.Errorf("note %s: %w", args[0], core.ErrNotFound)
			}
			n, _ := store.Note(args[0])
			fmt.Println(formatNote(n))
			return nil
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move [id] [x] [y]",
	Short: "Move a note on the free canvas",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("Invalid x", err)
		}
		y, err := strconv.Atoi(args[2])
		if err != nil {
			fatal("Invalid y", err)
		}
		withStore(func(ctx context.Context, store *board.Store) error {
			if !store.UpdateNotePosition(args[0], core.Position{X: x, Y: y}) {
				return fmt.Errorf("note %s: %w", args[0], core.ErrNotFound)
			}
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status [id] [board|todo|doing|done|archived]",
	Short: "Move a note to another lane",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		status := core.Status(args[1])
		if !status.Valid() {
			fatal("Invalid status", fmt.Errorf("%q", args[1]))
		}
		withStore(func(ctx context.Context, store *board.Store) error {
			if !store.UpdateNoteStatus(args[0], status) {
				return fmt.Errorf("note %s: %w", args[0], core.ErrNotFound)
			}
			return nil
		})
	},
}

var weekCmd = &cobra.Command{
	Use:   "week [id] [1-53]",
	Short: "Add a week to a note",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		week, err := strconv.Atoi(args[1])
		if err != nil || !core.ValidWeek(week) {
			fatal("Invalid week", fmt.Errorf("%q is not 1-53", args[1]))
		}
		withStore(func(ctx context.Context, store *board.Store) error {
			if !store.UpdateNoteWeek(args[0], week) {
				return fmt.Errorf("note %s: %w", args[0], core.ErrNotFound)
			}
			return nil
		})
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"delete"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			if !store.RemoveNote(args[0]) {
				return fmt.Errorf("note %s: %w", args[0], core.ErrNotFound)
			}
			fmt.Printf("Note deleted: %s\n", args[0])
			return nil
		})
	},
}

func noteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&noteTitle, "title", "", "Title")
	cmd.Flags().StringVar(&noteBody, "body", "", "Body text")
	cmd.Flags().StringVar(&noteColor, "color", "", "slate, blue, green, amber, rose or violet")
	cmd.Flags().StringVar(&noteClass, "class", "", "Class tag, e.g. 8B")
	cmd.Flags().StringVar(&notePriority, "priority", "", "low, medium or high")
	cmd.Flags().StringVar(&noteStatus, "status", "", "board, todo, doing, done or archived")
	cmd.Flags().StringVar(&noteReminder, "reminder", "", `Reminder time (RFC 3339 or "YYYY-MM-DD HH:MM")`)
	cmd.Flags().IntSliceVar(&noteWeeks, "week", nil, "ISO week numbers")
}

func init() {
	noteFlags(newCmd)
	newCmd.Flags().IntVar(&noteX, "x", 0, "Canvas x position")
	newCmd.Flags().IntVar(&noteY, "y", 0, "Canvas y position")

	noteFlags(editCmd)
	editCmd.Flags().BoolVar(&noClear, "clear-reminder", false, "Remove the reminder")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")

	rootCmd.AddCommand(addCmd, newCmd, showCmd, editCmd, moveCmd, statusCmd, weekCmd, rmCmd)
}
