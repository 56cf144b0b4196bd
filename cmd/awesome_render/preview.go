package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/italia-opensource/awesome-italia-opensource/internal/pipeline"
	"github.com/italia-opensource/awesome-italia-opensource/internal/preview"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

var previewCmd = &cobra.Command{
	Use:       "preview <domain>",
	Short:     "Show the README of a list in the terminal without writing it",
	ValidArgs: []string{string(types.DomainOpenSource), string(types.DomainCompanies)},
	Args:      cobra.ExactArgs(1),
	RunE:      runPreview,
}

var (
	previewWidth int
	previewStyle string
	previewRaw   bool
)

func init() {
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", preview.DefaultWidth, "Word wrap width")
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "Glamour style name or JSON style path (default: detected from the terminal)")
	previewCmd.Flags().BoolVar(&previewRaw, "raw", false, "Print the markdown source instead of rendering it")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	domain, err := types.ParseDomain(args[0])
	if err != nil {
		return err
	}

	readme, _, err := pipeline.Prepare(cmd.Context(), pipelineOptions(cmd), domain)
	if err != nil {
		return err
	}

	out := readme.Document().String()
	if !previewRaw {
		out, err = preview.Render(out, preview.Options{Width: previewWidth, Style: previewStyle})
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
