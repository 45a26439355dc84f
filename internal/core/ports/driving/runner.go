package driving

import (
	"context"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

// RunOptions selects what a run solves.
type RunOptions struct {
	// Days to solve, in order. Empty means every registered day.
	Days []int

	// Input overrides the input path. Only valid with exactly one day.
	Input string

	// OnReport is called after each successful day, before the next starts.
	OnReport func(domain.Report)
}

// Runner solves days.
type Runner interface {
	// Run solves the selected days sequentially.
	// The summary is returned even when err is non-nil.
	Run(ctx context.Context, opts RunOptions) (*domain.RunSummary, error)

	// Days returns every registered day in order.
	Days() []int

	// InputPath returns the input path for day.
	InputPath(day int) string
}
