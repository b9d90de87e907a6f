package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridorGrid is a 1x5 grid with every interior wall opened, giving the
// agent the playback route 0 -> 1 -> 2 -> 3 -> 4.
func corridorGrid() *Grid {
	grid := NewGrid(1, 5)
	for cell := 0; cell < 4; cell++ {
		grid.OpenWall(cell, cell+1, Right)
	}
	return grid
}

func TestAgentPlaybackPacing(t *testing.T) {
	s := manualSession(corridorGrid(), 4, []int{1, 2, 3, 4})

	now := testStart
	ticks := 0
	for s.State() == StatePlaying && ticks < 60 {
		now = now.Add(50 * time.Millisecond)
		queueBefore := len(s.agentQueue)
		require.NoError(t, s.Tick(now))
		stepped := queueBefore - len(s.agentQueue)
		assert.LessOrEqual(t, stepped, 1, "never more than one step per tick")
		ticks++
	}

	assert.Empty(t, s.agentQueue)
	assert.Equal(t, 4, s.AgentCell)

	// Four steps at 200-300ms each finish well inside 3 seconds of
	// simulated time, so the loop must have ended on the agent's arrival.
	assert.Less(t, ticks, 60)
	assert.Equal(t, StateGameOver, s.State())
}

func TestAgentNeverStepsBeforeMinimumDelay(t *testing.T) {
	s := manualSession(corridorGrid(), 4, []int{1, 2, 3, 4})

	// 150ms elapsed is always below the 200ms floor.
	for _, offset := range []time.Duration{50, 100, 150} {
		require.NoError(t, s.Tick(testStart.Add(offset*time.Millisecond)))
		assert.Equal(t, 0, s.AgentCell)
	}

	// 300ms elapsed meets any threshold in [200, 300).
	require.NoError(t, s.Tick(testStart.Add(300*time.Millisecond)))
	assert.Equal(t, 1, s.AgentCell)
}

func TestAgentStaysOnFinalCellWhenQueueEmpty(t *testing.T) {
	s := manualSession(corridorGrid(), 2, nil)
	s.AgentCell = 4

	now := testStart
	for i := 0; i < 10; i++ {
		now = now.Add(400 * time.Millisecond)
		require.NoError(t, s.Tick(now))
	}

	assert.Equal(t, 4, s.AgentCell)
	assert.Equal(t, StatePlaying, s.State())
}

func TestDelayThresholdIsResampledEveryTick(t *testing.T) {
	s := manualSession(corridorGrid(), 4, []int{1, 2, 3, 4})

	seen := map[time.Duration]bool{}
	now := testStart
	for i := 0; i < 20; i++ {
		now = now.Add(10 * time.Millisecond)
		require.NoError(t, s.Tick(now))
		seen[s.stepDelay] = true

		assert.GreaterOrEqual(t, s.stepDelay, s.cfg.AgentDelayMin)
		assert.Less(t, s.stepDelay, s.cfg.AgentDelayMax)
	}

	// Twenty draws from a 100ms range collapsing to one value would mean
	// the threshold is not being redrawn.
	assert.Greater(t, len(seen), 1)
}
