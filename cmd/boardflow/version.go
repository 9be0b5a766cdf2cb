package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/boardflow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of boardflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("boardflow version %s\n", boardflow.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
