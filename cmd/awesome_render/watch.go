package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/italia-opensource/awesome-italia-opensource/internal/pipeline"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
	"github.com/italia-opensource/awesome-italia-opensource/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Render every list, then re-render a list whenever its data changes",
	Long: `Renders both lists once, then watches awesome/<domain>/data and re-renders
the affected list after changes settle. Errors while watching are logged and
do not stop the watcher. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Quiet period before re-rendering (default from config, 500ms)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := renderDomains(cmd, types.Domains()); err != nil {
		return err
	}

	debounce := cfg.WatchDebounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	dirs := make(map[types.Domain]string, len(types.Domains()))
	for _, d := range types.Domains() {
		dirs[d] = cfg.DataDir(d)
	}

	w, err := watch.New(dirs, debounce, logger)
	if err != nil {
		return err
	}

	logger.Info("Watching for changes", zap.Duration("debounce", debounce))
	opts := pipelineOptions(cmd)
	return w.Run(cmd.Context(), func(ctx context.Context, domain types.Domain) {
		if _, err := pipeline.RunDomain(ctx, opts, domain); err != nil {
			logger.Error("Render failed", zap.String("domain", string(domain)), zap.Error(err))
		}
	})
}
