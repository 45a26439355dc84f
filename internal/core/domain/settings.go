package domain

import (
	"fmt"
	"strings"
)

// Default setting values.
const (
	DefaultInputDir     = "inputs"
	DefaultInputPattern = "day%02d.txt"
	DefaultFetchYear    = 2020
	DefaultFetchBaseURL = "https://adventofcode.com"
	DefaultHistoryKeep  = 100
)

// InputSettings locates puzzle inputs on disk.
type InputSettings struct {
	// Dir is the directory holding input files.
	Dir string

	// Pattern is a fmt verb pattern taking the day number, e.g. "day%02d.txt".
	Pattern string
}

// FileName returns the input file name for a day.
func (s InputSettings) FileName(day int) string {
	return fmt.Sprintf(s.Pattern, day)
}

// RunSettings controls the pipeline failure policies.
type RunSettings struct {
	// ContinueOnError keeps running later days after a failure.
	ContinueOnError bool

	// LenientParsing drops malformed records instead of failing the load.
	LenientParsing bool
}

// HistorySettings controls the run history store.
type HistorySettings struct {
	Enabled bool

	// Keep is how many runs per day "history prune" retains.
	Keep int
}

// FetchSettings configures downloading missing inputs.
type FetchSettings struct {
	Enabled bool
	Year    int
	BaseURL string
	Session string
}

// IsConfigured returns true if a fetch can be attempted.
func (s FetchSettings) IsConfigured() bool {
	return s.Enabled && s.Session != "" && s.BaseURL != ""
}

// AppSettings is the effective runner configuration.
type AppSettings struct {
	Inputs  InputSettings
	Run     RunSettings
	History HistorySettings
	Fetch   FetchSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Inputs: InputSettings{
			Dir:     DefaultInputDir,
			Pattern: DefaultInputPattern,
		},
		History: HistorySettings{Enabled: true, Keep: DefaultHistoryKeep},
		Fetch: FetchSettings{
			Year:    DefaultFetchYear,
			BaseURL: DefaultFetchBaseURL,
		},
	}
}

// Validate checks settings for values the runner cannot use.
func (s AppSettings) Validate() error {
	if s.Inputs.Dir == "" {
		return fmt.Errorf("%w: inputs.dir is empty", ErrInvalidInput)
	}
	if strings.Count(s.Inputs.Pattern, "%") != 1 || strings.Contains(s.Inputs.FileName(1), "%!") {
		return fmt.Errorf("%w: inputs.pattern %q must contain exactly one integer verb", ErrInvalidInput, s.Inputs.Pattern)
	}
	if s.History.Keep < 1 {
		return fmt.Errorf("%w: history.keep %d must be positive", ErrInvalidInput, s.History.Keep)
	}
	if s.Fetch.Enabled && s.Fetch.Year < 2015 {
		return fmt.Errorf("%w: fetch.year %d", ErrInvalidInput, s.Fetch.Year)
	}
	return nil
}
