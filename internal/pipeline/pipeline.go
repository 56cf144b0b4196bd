// Package pipeline orchestrates the load, aggregate, build and output steps of every domain.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/italia-opensource/awesome-italia-opensource/internal/aggregate"
	"github.com/italia-opensource/awesome-italia-opensource/internal/config"
	"github.com/italia-opensource/awesome-italia-opensource/internal/loader"
	"github.com/italia-opensource/awesome-italia-opensource/internal/rendering"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

// Step names reported through ProgressEvent
const (
	StepLoad      = "load"
	StepAggregate = "aggregate"
	StepBuild     = "build"
	StepOutput    = "output"
)

// ProgressEvent represents a progress update during a domain run
type ProgressEvent struct {
	Domain  types.Domain
	Step    string
	Message string
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds what every domain run needs.
// OnProgress may be called from several goroutines by Validate.
type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// Result summarizes one domain run
type Result struct {
	Domain     types.Domain
	Entries    int
	OutputPath string
	Written    bool
	Duration   time.Duration
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Options) emit(domain types.Domain, step, message string) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{Domain: domain, Step: step, Message: message})
	}
}

// Prepare loads, aggregates and builds the README of a domain without writing it.
func Prepare(ctx context.Context, opts Options, domain types.Domain) (*rendering.Readme, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	cfg := opts.Config
	logger := opts.logger().With(zap.String("domain", string(domain)))

	section, err := loadSection(cfg, domain, logger, func(step, message string) {
		opts.emit(domain, step, message)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", domain, err)
	}

	readme := rendering.NewReadme(domain.DisplayName(), section, cfg.OutputDir(domain), cfg.Identity)
	if err := readme.Build(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", domain, err)
	}
	opts.emit(domain, StepBuild, fmt.Sprintf("Built %s", readme.OutputPath()))

	return readme, section.Len(), nil
}

func loadSection(cfg *config.Config, domain types.Domain, logger *zap.Logger, emit func(step, message string)) (rendering.Section, error) {
	dir := cfg.DataDir(domain)
	logger.Debug("Loading records", zap.String("dir", dir))

	switch domain {
	case types.DomainOpenSource:
		records, err := loader.LoadProjects(dir, logger)
		if err != nil {
			return nil, err
		}
		emit(StepLoad, fmt.Sprintf("Loaded %d records", len(records)))

		projects, err := aggregate.Projects(records)
		if err != nil {
			return nil, err
		}
		emit(StepAggregate, fmt.Sprintf("Aggregated %d projects", len(projects)))
		return &rendering.OpensourceSection{Projects: projects}, nil

	case types.DomainCompanies:
		records, err := loader.LoadCompanies(dir, logger)
		if err != nil {
			return nil, err
		}
		emit(StepLoad, fmt.Sprintf("Loaded %d records", len(records)))

		companies, err := aggregate.Companies(records)
		if err != nil {
			return nil, err
		}
		emit(StepAggregate, fmt.Sprintf("Aggregated %d companies", len(companies)))
		return &rendering.CompaniesSection{Companies: companies}, nil

	default:
		_, err := types.ParseDomain(string(domain))
		return nil, err
	}
}

// RunDomain renders one domain and writes its README.
func RunDomain(ctx context.Context, opts Options, domain types.Domain) (*Result, error) {
	start := time.Now()
	logger := opts.logger()
	logger.Info("Rendering", zap.String("domain", string(domain)))

	readme, entries, err := Prepare(ctx, opts, domain)
	if err != nil {
		return nil, err
	}

	if err := readme.Output(); err != nil {
		return nil, fmt.Errorf("%s: %w", domain, err)
	}
	opts.emit(domain, StepOutput, fmt.Sprintf("Wrote %s", readme.OutputPath()))

	result := &Result{
		Domain:     domain,
		Entries:    entries,
		OutputPath: readme.OutputPath(),
		Written:    true,
		Duration:   time.Since(start),
	}
	logger.Info("Rendered",
		zap.String("domain", string(domain)),
		zap.Int("entries", entries),
		zap.String("output", result.OutputPath),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// Run renders the given domains in order, every domain when none is given.
// The first failure stops the run; READMEs already written stay written.
func Run(ctx context.Context, opts Options, domains ...types.Domain) ([]Result, error) {
	if len(domains) == 0 {
		domains = types.Domains()
	}

	results := make([]Result, 0, len(domains))
	for _, domain := range domains {
		result, err := RunDomain(ctx, opts, domain)
		if err != nil {
			return results, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// Validate loads, aggregates and builds every domain concurrently without writing anything.
func Validate(ctx context.Context, opts Options) ([]Result, error) {
	domains := types.Domains()
	results := make([]Result, len(domains))

	g, gCtx := errgroup.WithContext(ctx)
	for i, domain := range domains {
		g.Go(func() error {
			start := time.Now()
			readme, entries, err := Prepare(gCtx, opts, domain)
			if err != nil {
				return err
			}
			results[i] = Result{
				Domain:     domain,
				Entries:    entries,
				OutputPath: readme.OutputPath(),
				Duration:   time.Since(start),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
