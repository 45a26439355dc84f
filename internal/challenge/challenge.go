package challenge

import (
	"fmt"
	"io"
	"time"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/loader"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

// Challenge is one day's puzzle.
// R is the record parsed from one chunk of input; W is the wrapper built from all records.
type Challenge[R, W any] interface {
	// Day returns the puzzle's day number.
	Day() int

	// Delimiter returns the string separating records in the input.
	Delimiter() string

	// ParseRecord parses one chunk of input.
	ParseRecord(chunk string) (R, error)

	// Build assembles the wrapper from every parsed record.
	Build(records []R) (W, error)

	// Part1 computes the first answer.
	Part1(w W) (string, error)

	// Part2 computes the second answer.
	Part2(w W) (string, error)
}

// LineRecords provides the default one-record-per-line delimiter.
// Embed it in a challenge type.
type LineRecords struct{}

// Delimiter returns loader.Lines.
func (LineRecords) Delimiter() string { return loader.Lines }

// ParagraphRecords provides the blank-line record delimiter.
type ParagraphRecords struct{}

// Delimiter returns loader.Paragraphs.
func (ParagraphRecords) Delimiter() string { return loader.Paragraphs }

// Options tune a single solve.
type Options struct {
	Policy loader.Policy
}

// Unsolved is returned by a part that has no solver yet.
func Unsolved() (string, error) {
	return "", domain.ErrNotImplemented
}

// Load parses r into records and builds the wrapper.
func Load[R, W any](c Challenge[R, W], r io.Reader, opts Options) (W, error) {
	var zero W

	done := logger.Stage(c.Day(), "load")
	records, err := loader.Load(r, c.Delimiter(), c.ParseRecord, opts.Policy)
	done()
	if err != nil {
		return zero, err
	}

	w, err := c.Build(records)
	if err != nil {
		return zero, fmt.Errorf("build: %w", err)
	}
	return w, nil
}

// Solve runs the whole pipeline and returns the combined report.
// It stops at the first failing stage.
func Solve[R, W any](c Challenge[R, W], r io.Reader, opts Options) (domain.Report, error) {
	start := time.Now()

	w, err := Load(c, r, opts)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load: %w", err)
	}

	done := logger.Stage(c.Day(), "part 1")
	part1, err := c.Part1(w)
	done()
	if err != nil {
		return domain.Report{}, fmt.Errorf("part 1: %w", err)
	}

	done = logger.Stage(c.Day(), "part 2")
	part2, err := c.Part2(w)
	done()
	if err != nil {
		return domain.Report{}, fmt.Errorf("part 2: %w", err)
	}

	return domain.Report{
		Day:     c.Day(),
		Part1:   part1,
		Part2:   part2,
		Elapsed: time.Since(start),
	}, nil
}

// Solver is a challenge with its record and wrapper types erased.
type Solver interface {
	// Day returns the puzzle's day number.
	Day() int

	// Solve runs the pipeline over r.
	Solve(r io.Reader, opts Options) (domain.Report, error)
}

type adapter[R, W any] struct {
	c Challenge[R, W]
}

// Adapt wraps a typed challenge as a Solver.
func Adapt[R, W any](c Challenge[R, W]) Solver {
	return adapter[R, W]{c: c}
}

func (a adapter[R, W]) Day() int { return a.c.Day() }

func (a adapter[R, W]) Solve(r io.Reader, opts Options) (domain.Report, error) {
	return Solve(a.c, r, opts)
}

// SolveFile opens path and solves it with s.
func SolveFile(s Solver, path string, opts Options) (domain.Report, error) {
	f, err := loader.Open(path)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load: %w", err)
	}
	defer f.Close()

	return s.Solve(f, opts)
}
