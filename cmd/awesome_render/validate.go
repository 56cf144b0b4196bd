package main

import (
	"github.com/spf13/cobra"

	"github.com/italia-opensource/awesome-italia-opensource/internal/observability"
	"github.com/italia-opensource/awesome-italia-opensource/internal/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every list without writing any README",
	Long:  "Loads, validates and builds both lists concurrently. Nothing is written; the exit status tells whether a render would succeed.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	// Progress is not printed: both lists are checked at the same time.
	opts := pipeline.Options{Config: cfg, Logger: logger}

	results, err := pipeline.Validate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintResults("VALIDATED LISTS", results)
	return nil
}
