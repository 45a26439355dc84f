package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/advent-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("inputs.dir", "puzzles")
	_ = store.Set("inputs.pattern", "%d.in")
	_ = store.Set("run.continue_on_error", true)
	_ = store.Set("history.enabled", false)
	_ = store.Set("fetch.year", int64(2021))
	_ = store.Set("fetch.session", "cookie")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "puzzles", settings.Inputs.Dir)
	assert.Equal(t, "%d.in", settings.Inputs.Pattern)
	assert.True(t, settings.Run.ContinueOnError)
	assert.False(t, settings.Run.LenientParsing)
	assert.False(t, settings.History.Enabled)
	assert.Equal(t, 2021, settings.Fetch.Year)
	assert.Equal(t, "cookie", settings.Fetch.Session)
	assert.Equal(t, domain.DefaultFetchBaseURL, settings.Fetch.BaseURL)
}

func TestSettingsService_Get_InvalidStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("inputs.pattern", "input.txt")

	service := NewSettingsService(store)

	_, err := service.Get()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Inputs.Dir = "data"
	settings.Run.LenientParsing = true
	settings.History.Keep = 5

	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)

	_, ok := store.Get("fetch.session")
	assert.False(t, ok, "empty session is not written")
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings := domain.DefaultAppSettings()
	settings.Inputs.Dir = ""

	assert.ErrorIs(t, service.Save(&settings), domain.ErrInvalidInput)
}

func TestSettingsService_SetSession(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	assert.ErrorIs(t, service.SetSession(""), domain.ErrSessionRequired)

	require.NoError(t, service.SetSession("53616c7465645f5f"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "53616c7465645f5f", settings.Fetch.Session)
	assert.True(t, settings.Fetch.Enabled)
	assert.True(t, settings.Fetch.IsConfigured())
}
