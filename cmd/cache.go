package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"partbuilder/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the run cache",
}

var cacheInspectCmd = &cobra.Command{
	Use:   "inspect <cache-path>",
	Short: "List recent cached runs",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheInspect,
}

func init() {
	cacheCmd.AddCommand(cacheInspectCmd)
}

func runCacheInspect(cmd *cobra.Command, args []string) error {
	s, err := store.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer s.Close()

	runs, err := s.RecentRuns(20)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	for _, rec := range runs {
		fmt.Printf("%s  boot=%-10s parts=%-3d packages=%-3d  %s\n",
			rec.RunID, rec.BootPart, rec.PartCount, rec.PackageCount, rec.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return nil
}
