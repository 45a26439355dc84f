package domain

import (
	"fmt"
	"time"
)

// Report is the outcome of one day's pipeline.
type Report struct {
	Day     int
	Part1   string
	Part2   string
	Elapsed time.Duration
}

// String formats the report as the canonical output line.
func (r Report) String() string {
	return fmt.Sprintf("# Day %d - Part 1 : %s - Part 2 : %s", r.Day, r.Part1, r.Part2)
}

// RunSummary aggregates the reports produced by one runner invocation.
type RunSummary struct {
	Reports []Report
	Failed  []int
	Elapsed time.Duration
}

// Succeeded returns the number of days that produced a report.
func (s *RunSummary) Succeeded() int {
	return len(s.Reports)
}
