package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driving"
)

// mockRunner implements driving.Runner.
type mockRunner struct {
	dir     string
	reports map[int]domain.Report
	failDay int
	last    driving.RunOptions
}

func (m *mockRunner) Run(_ context.Context, opts driving.RunOptions) (*domain.RunSummary, error) {
	m.last = opts
	days := opts.Days
	if len(days) == 0 {
		days = m.Days()
	}
	summary := &domain.RunSummary{}
	for _, day := range days {
		if day == m.failDay {
			summary.Failed = append(summary.Failed, day)
			return summary, fmt.Errorf("day %d: %w", day, domain.ErrNoSolution)
		}
		report, ok := m.reports[day]
		if !ok {
			report = domain.Report{Day: day, Part1: "-", Part2: "-"}
		}
		summary.Reports = append(summary.Reports, report)
		if opts.OnReport != nil {
			opts.OnReport(report)
		}
	}
	return summary, nil
}

func (m *mockRunner) Days() []int { return []int{1, 2} }

func (m *mockRunner) InputPath(day int) string {
	return filepath.Join(m.dir, fmt.Sprintf("day%02d.txt", day))
}

// mockSettings implements driving.SettingsService.
type mockSettings struct {
	settings domain.AppSettings
	session  string
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettings) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettings) SetSession(token string) error {
	if token == "" {
		return domain.ErrSessionRequired
	}
	m.session = token
	m.settings.Fetch.Session = token
	m.settings.Fetch.Enabled = true
	return nil
}

func (m *mockSettings) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockHistory implements driving.HistoryService.
type mockHistory struct {
	runs     []domain.RunRecord
	disabled bool
	filter   domain.RunFilter
	kept     int
}

func (m *mockHistory) Recent(_ context.Context, filter domain.RunFilter) ([]domain.RunRecord, error) {
	m.filter = filter
	if m.disabled {
		return nil, domain.ErrNotFound
	}
	return m.runs, nil
}

func (m *mockHistory) Prune(_ context.Context, keep int) error {
	if keep < 1 {
		return domain.ErrInvalidInput
	}
	m.kept = keep
	return nil
}

type testServices struct {
	runner   *mockRunner
	settings *mockSettings
	history  *mockHistory
}

// setupTestServices installs mock services and resets flag state.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		runner: &mockRunner{reports: map[int]domain.Report{
			1: {Day: 1, Part1: "514579", Part2: "241861950"},
			2: {Day: 2, Part1: "2", Part2: "1"},
		}},
		settings: &mockSettings{settings: domain.DefaultAppSettings()},
		history:  &mockHistory{},
	}
	SetServices(&Services{Runner: ts.runner, Settings: ts.settings, History: ts.history})

	runInput = ""
	historyLimit = domain.DefaultHistoryLimit
	pruneKeep = 0

	return ts, func() {
		SetServices(&Services{})
		rootCmd.SetArgs(nil)
	}
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
