package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow/pkg/board"
	"github.com/aretw0/boardflow/pkg/core"
)

var (
	designOff   bool
	styleValues struct {
		offsetX, offsetY, width, minHeight, opacity, fontScale float64
		font                                                   string
		visible                                                bool
	}
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Adjust the layout of the board regions",
}

var designEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn design mode on (or off with --off)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			store.SetDesignEnabled(!designOff)
			return nil
		})
	},
}

var designSelectCmd = &cobra.Command{
	Use:   "select [module]",
	Short: "Choose the region being edited",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := moduleArg(args[0])
		withStore(func(ctx context.Context, store *board.Store) error {
			store.SelectDesignModule(id)
			return nil
		})
	},
}

var designStyleCmd = &cobra.Command{
	Use:   "style [module]",
	Short: "Change the style of a region",
	Long:  `Only the flags given are changed. Values are clamped to their slider range.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := moduleArg(args[0])
		flags := cmd.Flags()
		var patch core.ModuleStylePatch
		floats := []struct {
			name string
			val  *float64
			dst  **float64
		}{
			{"offset-x", &styleValues.offsetX, &patch.OffsetX},
			{"offset-y", &styleValues.offsetY, &patch.OffsetY},
			{"width", &styleValues.width, &patch.WidthPercent},
			{"min-height", &styleValues.minHeight, &patch.MinHeight},
			{"opacity", &styleValues.opacity, &patch.Opacity},
			{"font-scale", &styleValues.fontScale, &patch.FontScale},
		}
		for _, f := range floats {
			if flags.Changed(f.name) {
				*f.dst = f.val
			}
		}
		if flags.Changed("font") {
			font := core.FontFamily(styleValues.font)
			patch.FontFamily = &font
		}
		if flags.Changed("visible") {
			patch.Visible = &styleValues.visible
		}

		withStore(func(ctx context.Context, store *board.Store) error {
			store.UpdateModuleStyle(id, patch)
			return printJSON(cmd.OutOrStdout(), store.Snapshot().Settings.AdminDesign.Style(id))
		})
	},
}

var designResetCmd = &cobra.Command{
	Use:   "reset [module]",
	Short: "Reset one region, or the whole design without an argument",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(ctx context.Context, store *board.Store) error {
			if len(args) == 0 {
				store.ResetDesign()
				return nil
			}
			store.ResetModuleStyle(moduleArg(args[0]))
			return nil
		})
	},
}

func moduleArg(s string) core.ModuleID {
	id := core.ModuleID(s)
	if !id.Valid() {
		fatal("Invalid module", fmt.Errorf("%q (want one of %v)", s, core.ModuleIDs))
	}
	return id
}

func init() {
	designEnableCmd.Flags().BoolVar(&designOff, "off", false, "Turn design mode off")

	f := designStyleCmd.Flags()
	f.Float64Var(&styleValues.offsetX, "offset-x", 0, "Horizontal offset in px (-900..900)")
	f.Float64Var(&styleValues.offsetY, "offset-y", 0, "Vertical offset in px (-900..900)")
	f.Float64Var(&styleValues.width, "width", 100, "Width in percent (30..100)")
	f.Float64Var(&styleValues.minHeight, "min-height", 0, "Minimum height in px (0..1500)")
	f.Float64Var(&styleValues.opacity, "opacity", 1, "Opacity (0.2..1)")
	f.Float64Var(&styleValues.fontScale, "font-scale", 1, "Font scale (0.7..1.6)")
	f.StringVar(&styleValues.font, "font", "sans", "sans, serif, mono or display")
	f.BoolVar(&styleValues.visible, "visible", true, "Show the region")

	designCmd.AddCommand(designEnableCmd, designSelectCmd, designStyleCmd, designResetCmd)
	rootCmd.AddCommand(designCmd)
}
