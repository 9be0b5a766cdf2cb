package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow/pkg/board"
	"github.com/aretw0/boardflow/pkg/core"
)

var filterSetFlags filterFlags

var viewCmd = &cobra.Command{
	Use:   "view [free|columns|class]",
	Short: "Switch the board layout",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode := core.BoardMode(args[0])
		if !mode.Valid() {
			fatal("Invalid mode", fmt.Errorf("%q", args[0]))
		}
		withStore(func(ctx context.Context, store *board.Store) error {
			store.SetViewMode(mode)
			return nil
		})
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Change the saved view filters",
}

var filterSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the filters given as flags",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		patch := filterSetFlags.patch(cmd)
		withStore(func(ctx context.Context, store *board.Store) error {
			store.UpdateFilters(patch)
			return printJSON(cmd.OutOrStdout(), store.Snapshot().View.Filters)
		})
	},
}

var filterResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default filters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			store.ResetFilters()
			return nil
		})
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Change the color scheme",
}

var themeSetCmd = &cobra.Command{
	Use:   "set [system|light|dark]",
	Short: "Set the color scheme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		theme := core.Theme(args[0])
		if !theme.Valid() {
			fatal("Invalid theme", fmt.Errorf("%q", args[0]))
		}
		withStore(func(ctx context.Context, store *board.Store) error {
			store.SetTheme(theme)
			return nil
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Cycle dark, light and system",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			fmt.Println(store.ToggleTheme())
			return nil
		})
	},
}

var autoArchiveCmd = &cobra.Command{
	Use:       "auto-archive [on|off]",
	Short:     "Archive past-week notes automatically",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	Run: func(cmd *cobra.Command, args []string) {
		var enabled bool
		switch args[0] {
		case "on":
			enabled = true
		case "off":
		default:
			fatal("Invalid value", fmt.Errorf("%q (want on or off)", args[0]))
		}
		withStore(func(ctx context.Context, store *board.Store) error {
			store.SetAutoArchivePastWeeks(enabled)
			if enabled {
				fmt.Printf("Archived %d notes\n", store.RunAutoArchive(0))
			}
			return nil
		})
	},
}

func init() {
	filterSetFlags.bind(filterSetCmd)
	filterCmd.AddCommand(filterSetCmd, filterResetCmd)
	themeCmd.AddCommand(themeSetCmd, themeToggleCmd)
	rootCmd.AddCommand(viewCmd, filterCmd, themeCmd, autoArchiveCmd)
}
