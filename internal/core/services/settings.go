package services

import (
	"fmt"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driven"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyInputsDir       = "inputs.dir"
	keyInputsPattern   = "inputs.pattern"
	keyContinueOnError = "run.continue_on_error"
	keyLenientParsing  = "run.lenient_parsing"
	keyHistoryEnabled  = "history.enabled"
	keyHistoryKeep     = "history.keep"
	keyFetchEnabled    = "fetch.enabled"
	keyFetchYear       = "fetch.year"
	keyFetchBaseURL    = "fetch.base_url"
	keyFetchSession    = "fetch.session"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing keys fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Inputs: domain.InputSettings{
			Dir:     s.getString(keyInputsDir, defaults.Inputs.Dir),
			Pattern: s.getString(keyInputsPattern, defaults.Inputs.Pattern),
		},
		Run: domain.RunSettings{
			ContinueOnError: s.getBool(keyContinueOnError, defaults.Run.ContinueOnError),
			LenientParsing:  s.getBool(keyLenientParsing, defaults.Run.LenientParsing),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Keep:    s.getInt(keyHistoryKeep, defaults.History.Keep),
		},
		Fetch: domain.FetchSettings{
			Enabled: s.getBool(keyFetchEnabled, defaults.Fetch.Enabled),
			Year:    s.getInt(keyFetchYear, defaults.Fetch.Year),
			BaseURL: s.getString(keyFetchBaseURL, defaults.Fetch.BaseURL),
			Session: s.configStore.GetString(keyFetchSession),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save validates and persists application settings.
// An empty session is not written, so saving never clears a stored token.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyInputsDir, settings.Inputs.Dir},
		{keyInputsPattern, settings.Inputs.Pattern},
		{keyContinueOnError, settings.Run.ContinueOnError},
		{keyLenientParsing, settings.Run.LenientParsing},
		{keyHistoryEnabled, settings.History.Enabled},
		{keyHistoryKeep, settings.History.Keep},
		{keyFetchEnabled, settings.Fetch.Enabled},
		{keyFetchYear, settings.Fetch.Year},
		{keyFetchBaseURL, settings.Fetch.BaseURL},
	}
	if settings.Fetch.Session != "" {
		values = append(values, struct {
			key   string
			value any
		}{keyFetchSession, settings.Fetch.Session})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SetSession stores the adventofcode.com session token and enables fetching.
func (s *SettingsService) SetSession(token string) error {
	if token == "" {
		return domain.ErrSessionRequired
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Fetch.Session = token
	settings.Fetch.Enabled = true

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
