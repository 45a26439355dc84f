package driving

import "github.com/custodia-labs/advent-cli/internal/core/domain"

// SettingsService reads and writes the runner configuration.
type SettingsService interface {
	// Get returns the effective settings, with defaults for unset keys.
	Get() (*domain.AppSettings, error)

	// Save rejects invalid settings before writing anything.
	Save(settings *domain.AppSettings) error

	// SetSession stores the adventofcode.com session cookie and enables fetching.
	// An empty token is domain.ErrSessionRequired.
	SetSession(token string) error

	GetDefaults() domain.AppSettings
}
