// Package main provides the entry point of the awesome list README renderer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/italia-opensource/awesome-italia-opensource/internal/config"
	"github.com/italia-opensource/awesome-italia-opensource/internal/logging"
	"github.com/italia-opensource/awesome-italia-opensource/internal/observability"
	"github.com/italia-opensource/awesome-italia-opensource/internal/pipeline"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Set up by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "awesome_render",
	Short: "Render the Italia Opensource awesome lists",
	Long: `awesome_render turns the JSON records under awesome/<domain>/data into the
README of each list: first the open source projects, then the companies.

Run without arguments to render both lists. Any invalid record, non-JSON file
or duplicate entry aborts the run with a non-zero exit status.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return renderDomains(cmd, types.Domains())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs and a summary of every list")
}

// setup loads the configuration and the logger shared by every command.
func setup(*cobra.Command, []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		loaded.Verbose = true
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(loaded.Verbose)
	if err != nil {
		return err
	}

	cfg, logger = loaded, l
	return nil
}

// pipelineOptions wires the shared config and logger, printing progress in verbose mode.
func pipelineOptions(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{Config: cfg, Logger: logger}
	if cfg.Verbose {
		opts.OnProgress = observability.NewPrinter(cmd.OutOrStdout()).PrintProgress
	}
	return opts
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
