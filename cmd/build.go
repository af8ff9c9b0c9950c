package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"partbuilder/store"
)

var buildCmd = &cobra.Command{
	Use:   "build <config-file>",
	Short: "Compute the package set for a job config and cache the run",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	configPath := args[0]

	result, cfg, err := runJob(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("\nBuild summary:\n")
	for name, indices := range result.Parts {
		fmt.Printf("  %s loads %d package(s): %v\n", name, len(indices), indices)
	}
	for i, classes := range result.Classes {
		fmt.Printf("  package #%d: %d classes\n", i, len(classes))
	}

	if cfg.CachePath == "" {
		return nil
	}

	s, err := store.Open(cfg.CachePath)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer s.Close()

	rec := store.RunRecord{
		RunID:        uuid.New().String(),
		BootPart:     result.BootPart,
		Timestamp:    time.Now().UTC(),
		PartCount:    len(result.Parts),
		PackageCount: len(result.Classes),
	}
	if err := s.SaveRun(rec, result.Classes); err != nil {
		return fmt.Errorf("caching run: %w", err)
	}

	fmt.Fprintf(os.Stdout, "cached run %s\n", rec.RunID)
	return nil
}
