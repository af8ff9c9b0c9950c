package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"partbuilder/ui"
)

var explainCmd = &cobra.Command{
	Use:   "explain <config-file>",
	Short: "Show the part/package/class tree for a job config",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	result, _, err := runJob(args[0])
	if err != nil {
		return err
	}

	if tuiFlag {
		return ui.Explain(result)
	}
	return ui.ExplainPlain(os.Stdout, result)
}
