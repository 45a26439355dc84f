package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driven"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driving"
	"github.com/custodia-labs/advent-cli/internal/loader"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

// Ensure Runner implements the interface.
var _ driving.Runner = (*Runner)(nil)

// Runner solves catalog days one after another.
type Runner struct {
	catalog  *challenge.Catalog
	inputs   driven.InputSource
	runs     driven.RunStore
	settings domain.RunSettings

	now   func() time.Time
	newID func() string
}

// NewRunner creates a runner.
// runs is optional; if nil, run history is not recorded.
func NewRunner(
	catalog *challenge.Catalog,
	inputs driven.InputSource,
	runs driven.RunStore,
	settings domain.RunSettings,
) *Runner {
	return &Runner{
		catalog:  catalog,
		inputs:   inputs,
		runs:     runs,
		settings: settings,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Days returns every registered day in order.
func (r *Runner) Days() []int {
	return r.catalog.Days()
}

// InputPath returns where the input for day is read from.
func (r *Runner) InputPath(day int) string {
	return r.inputs.Path(day)
}

// Run solves the selected days sequentially.
// By default the first failure stops the run; with ContinueOnError every
// selected day is attempted and the failures are joined.
func (r *Runner) Run(ctx context.Context, opts driving.RunOptions) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{}

	if opts.Input != "" && len(opts.Days) != 1 {
		return summary, fmt.Errorf("%w: --input needs exactly one day, got %d", domain.ErrInvalidInput, len(opts.Days))
	}

	solvers, err := r.catalog.Select(opts.Days)
	if err != nil {
		return summary, err
	}

	start := r.now()
	defer func() { summary.Elapsed = r.now().Sub(start) }()

	var errs []error
	for _, s := range solvers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		logger.Section(fmt.Sprintf("Day %d", s.Day()))
		startedAt := r.now()
		report, err := r.solve(ctx, s, opts.Input)
		r.record(ctx, s.Day(), report, err, startedAt)

		if err != nil {
			if loader.IsParseError(err) && !r.settings.LenientParsing {
				err = fmt.Errorf("%w (set run.lenient_parsing = true to skip malformed records)", err)
			}
			err = fmt.Errorf("day %d: %w", s.Day(), err)
			summary.Failed = append(summary.Failed, s.Day())
			if !r.settings.ContinueOnError {
				return summary, err
			}
			logger.Warn("%v", err)
			errs = append(errs, err)
			continue
		}

		summary.Reports = append(summary.Reports, report)
		if opts.OnReport != nil {
			opts.OnReport(report)
		}
	}

	return summary, errors.Join(errs...)
}

func (r *Runner) options() challenge.Options {
	policy := loader.Strict
	if r.settings.LenientParsing {
		policy = loader.Lenient
	}
	return challenge.Options{Policy: policy}
}

func (r *Runner) solve(ctx context.Context, s challenge.Solver, input string) (domain.Report, error) {
	if input != "" {
		logger.Debug("day %d: reading %s", s.Day(), input)
		return challenge.SolveFile(s, input, r.options())
	}

	logger.Debug("day %d: reading %s", s.Day(), r.inputs.Path(s.Day()))
	rc, err := r.inputs.Open(ctx, s.Day())
	if err != nil {
		return domain.Report{}, fmt.Errorf("load: %w", err)
	}
	defer rc.Close()

	return s.Solve(rc, r.options())
}

// record saves the attempt. Store failures are logged and never fail the run.
func (r *Runner) record(ctx context.Context, day int, report domain.Report, solveErr error, startedAt time.Time) {
	if r.runs == nil {
		return
	}

	run := &domain.RunRecord{
		ID:        r.newID(),
		Day:       day,
		Part1:     report.Part1,
		Part2:     report.Part2,
		StartedAt: startedAt,
		Duration:  r.now().Sub(startedAt),
	}
	if solveErr != nil {
		run.Error = solveErr.Error()
	}

	// A cancelled run is still recorded.
	if err := r.runs.Save(context.WithoutCancel(ctx), run); err != nil {
		logger.Warn("day %d: recording run: %v", day, err)
	}
}
