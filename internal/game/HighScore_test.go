package game

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighScoreServiceRoundTrip(t *testing.T) {
	service, err := NewHighScoreService(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer service.Close()

	require.NoError(t, service.SaveRun("ada", 25, true))
	require.NoError(t, service.SaveRun("brian", 7, false))
	require.NoError(t, service.SaveRun("carol", 12, false))

	count, err := service.GetTotalRunCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	runs, err := service.GetTopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Wins sort first, then higher levels.
	assert.Equal(t, "ada", runs[0].PlayerName)
	assert.True(t, runs[0].Won)
	assert.Equal(t, "carol", runs[1].PlayerName)
	assert.Equal(t, "brian", runs[2].PlayerName)
}

func TestGetTopRunsHonorsLimit(t *testing.T) {
	service, err := NewHighScoreService(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer service.Close()

	for i := 1; i <= 5; i++ {
		require.NoError(t, service.SaveRun("racer", i, false))
	}

	runs, err := service.GetTopRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
	assert.Equal(t, 5, runs[0].LevelReached)
}
