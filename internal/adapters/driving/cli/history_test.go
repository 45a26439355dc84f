package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history [day]", historyCmd.Use)
}

func TestHistoryCmd_HasLimitFlag(t *testing.T) {
	flag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	started := time.Date(2020, 12, 1, 6, 0, 0, 0, time.UTC)
	ts.history.runs = []domain.RunRecord{
		{ID: "b", Day: 1, Part1: "514579", Part2: "241861950", StartedAt: started, Duration: 2 * time.Millisecond},
		{ID: "a", Day: 1, Error: "load: io error", StartedAt: started.Add(-time.Hour)},
	}

	out, err := execute("history", "1", "-n", "5")

	require.NoError(t, err)
	assert.Equal(t, domain.RunFilter{Day: 1, Limit: 5}, ts.history.filter)
	assert.Contains(t, out, "STARTED")
	assert.Contains(t, out, "514579 / 241861950")
	assert.Contains(t, out, "2ms")
	assert.Contains(t, out, "load: io error")
}

func TestHistoryCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("history")

	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestHistoryCmd_Disabled(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.history.disabled = true

	out, err := execute("history")

	require.NoError(t, err)
	assert.Contains(t, out, "Run history is disabled")
}

func TestHistoryCmd_TooManyArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("history", "1", "2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestHistoryPruneCmd_UsesSettingByDefault(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.settings.History.Keep = 7

	out, err := execute("history", "prune")

	require.NoError(t, err)
	assert.Equal(t, 7, ts.history.kept)
	assert.Contains(t, out, "Kept the 7 most recent runs")
}

func TestHistoryPruneCmd_KeepFlag(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("history", "prune", "--keep", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, ts.history.kept)

	_, err = execute("history", "prune", "--keep", "-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
