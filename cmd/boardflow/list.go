package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow/pkg/board"
	"github.com/aretw0/boardflow/pkg/core"
)

var (
	listJSON    bool
	listAll     bool
	listFilters filterFlags
)

// filterFlags binds the board filters to command flags.
type filterFlags struct {
	class       string
	priority    string
	week        int
	status      string
	search      string
	currentWeek bool
	archived    bool
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.class, "class", "", "Only notes with this class tag")
	cmd.Flags().StringVar(&f.priority, "priority", "", "low, medium, high or all")
	cmd.Flags().IntVar(&f.week, "week", 0, "Only notes in this ISO week")
	cmd.Flags().StringVar(&f.status, "status", "", "A status or all")
	cmd.Flags().StringVar(&f.search, "search", "", "Text in title, body or class tag")
	cmd.Flags().BoolVar(&f.currentWeek, "current-week", false, "Only notes in the current week")
	cmd.Flags().BoolVar(&f.archived, "archived", false, "Include archived notes")
}

// patch returns the filters changed on the command line.
func (f *filterFlags) patch(cmd *cobra.Command) board.FiltersPatch {
	flags := cmd.Flags()
	var p board.FiltersPatch
	if flags.Changed("class") {
		p.ClassTag = &f.class
	}
	if flags.Changed("priority") {
		v := core.PriorityFilter(f.priority)
		p.Priority = &v
	}
	if flags.Changed("week") {
		p.WeekNumber = &f.week
	}
	if flags.Changed("status") {
		v := core.StatusFilter(f.status)
		p.Status = &v
	}
	if flags.Changed("search") {
		p.Search = &f.search
	}
	if flags.Changed("current-week") {
		p.OnlyCurrentWeek = &f.currentWeek
	}
	if flags.Changed("archived") {
		p.IncludeArchived = &f.archived
	}
	return p
}

// applyFilters overlays p on f without touching the saved view.
func applyFilters(f core.Filters, p board.FiltersPatch) core.Filters {
	out := f.Clone()
	if p.ClassTag != nil {
		out.ClassTag = nil
		if *p.ClassTag != "" {
			out.ClassTag = p.ClassTag
		}
	}
	if p.Priority != nil && p.Priority.Valid() {
		out.Priority = *p.Priority
	}
	if p.WeekNumber != nil {
		out.WeekNumber = nil
		if *p.WeekNumber != 0 {
			out.WeekNumber = p.WeekNumber
		}
	}
	if p.Status != nil && p.Status.Valid() {
		out.Status = *p.Status
	}
	if p.Search != nil {
		out.Search = *p.Search
	}
	if p.OnlyCurrentWeek != nil {
		out.OnlyCurrentWeek = *p.OnlyCurrentWeek
	}
	if p.IncludeArchived != nil {
		out.IncludeArchived = *p.IncludeArchived
	}
	return out
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes through the saved view filters",
	Long: `List notes, newest first. The saved view filters apply; filter flags
given here override them for this listing only. --all ignores every filter.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		patch := listFilters.patch(cmd)
		withStore(func(ctx context.Context, store *board.Store) error {
			notes := store.Notes()
			if !listAll {
				filters := applyFilters(store.Snapshot().View.Filters, patch)
				notes = core.FilterNotes(notes, filters, core.ISOWeek(time.Now()))
			}
			if listJSON {
				return printJSON(os.Stdout, notes)
			}
			printNotes(os.Stdout, notes)
			return nil
		})
	},
}

func init() {
	listFilters.bind(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Ignore every filter")
	rootCmd.AddCommand(listCmd)
}
