package domain

import "time"

// RunRecord is one solve attempt kept in the run history.
type RunRecord struct {
	ID        string
	Day       int
	Part1     string
	Part2     string
	Error     string
	StartedAt time.Time
	Duration  time.Duration
}

// OK reports whether the attempt produced both answers.
func (r RunRecord) OK() bool {
	return r.Error == ""
}

// RunFilter narrows a history query.
// A zero Day matches every day; a non-positive Limit means DefaultHistoryLimit.
type RunFilter struct {
	Day   int
	Limit int
}

// DefaultHistoryLimit caps history queries that do not set a limit.
const DefaultHistoryLimit = 20

// EffectiveLimit returns the limit to apply to a query.
func (f RunFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultHistoryLimit
	}
	return f.Limit
}
