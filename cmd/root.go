// Package cmd implements the partbuilder command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tuiFlag bool

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "partbuilder",
	Short: "Group classes into loadable packages for a set of application parts",
	Long: `partbuilder computes, for a set of named application parts and a
class dependency graph, the minimal set of shared packages each part
must load and the order in which to load them.`,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(cacheCmd)

	explainCmd.Flags().BoolVar(&tuiFlag, "tui", false, "render an interactive tree instead of plain text")
}
