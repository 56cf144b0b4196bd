package main

import (
	"github.com/spf13/cobra"

	"github.com/italia-opensource/awesome-italia-opensource/internal/observability"
	"github.com/italia-opensource/awesome-italia-opensource/internal/pipeline"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

var renderCmd = &cobra.Command{
	Use:       "render [domain...]",
	Short:     "Render the README of every list, or only of the given ones",
	Long:      "Renders awesome/<domain>/README for each domain in order. Domains: opensource, companies.",
	ValidArgs: []string{string(types.DomainOpenSource), string(types.DomainCompanies)},
	RunE:      runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	domains, err := parseDomains(args)
	if err != nil {
		return err
	}
	return renderDomains(cmd, domains)
}

// parseDomains returns every domain when args is empty.
func parseDomains(args []string) ([]types.Domain, error) {
	if len(args) == 0 {
		return types.Domains(), nil
	}

	domains := make([]types.Domain, 0, len(args))
	for _, arg := range args {
		d, err := types.ParseDomain(arg)
		if err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, nil
}

func renderDomains(cmd *cobra.Command, domains []types.Domain) error {
	results, err := pipeline.Run(cmd.Context(), pipelineOptions(cmd), domains...)
	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintResults("RENDERED LISTS", results)
	}
	return err
}
