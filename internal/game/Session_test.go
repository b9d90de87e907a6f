package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// manualSession builds a session around a hand-made grid so tests control
// the walls, the exit and the agent queue exactly.
func manualSession(grid *Grid, exit int, queue []int) *Session {
	return &Session{
		cfg:         DefaultConfig(),
		rng:         rand.New(rand.NewSource(99)),
		Level:       1,
		Grid:        grid,
		ExitCell:    exit,
		agentQueue:  queue,
		pendingMove: Waiting,
		lastStepAt:  testStart,
		state:       StatePlaying,
	}
}

func TestNewSessionStartsAtLevelOneOnInitialGrid(t *testing.T) {
	cfg := DefaultConfig()
	s, err := NewSession(cfg, rand.New(rand.NewSource(5)), testStart)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Level)
	assert.Equal(t, cfg.InitialRows, s.Grid.Rows)
	assert.Equal(t, cfg.InitialCols, s.Grid.Cols)
	assert.Equal(t, 0, s.PlayerCell)
	assert.Equal(t, 0, s.AgentCell)
	assert.Equal(t, StatePlaying, s.State())
	assert.Empty(t, s.Message())
}

func TestWalledMoveIsDiscarded(t *testing.T) {
	s := manualSession(NewGrid(2, 2), 3, nil)

	s.QueueMove(Up) // cell 0 always has its north boundary wall
	require.NoError(t, s.Tick(testStart))

	assert.Equal(t, 0, s.PlayerCell)
	assert.Equal(t, Waiting, s.pendingMove, "a blocked intent is still spent")
}

func TestOpenWallMoveIsApplied(t *testing.T) {
	grid := NewGrid(2, 2)
	grid.OpenWall(0, 1, Right)
	s := manualSession(grid, 3, nil)

	s.QueueMove(Right)
	require.NoError(t, s.Tick(testStart))
	assert.Equal(t, 1, s.PlayerCell)

	// The intent does not repeat on the next tick.
	require.NoError(t, s.Tick(testStart))
	assert.Equal(t, 1, s.PlayerCell)
}

func TestLatestMoveIntentWins(t *testing.T) {
	grid := NewGrid(2, 2)
	grid.OpenWall(0, 1, Right)
	grid.OpenWall(0, 2, Down)
	s := manualSession(grid, 3, nil)

	s.QueueMove(Right)
	s.QueueMove(Down)
	require.NoError(t, s.Tick(testStart))

	assert.Equal(t, 2, s.PlayerCell)
}

func TestLevelProgressionThroughTheCampaign(t *testing.T) {
	cfg := DefaultConfig()
	s, err := NewSession(cfg, rand.New(rand.NewSource(17)), testStart)
	require.NoError(t, err)

	s.SkipLevel()
	require.NoError(t, s.Tick(testStart))
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 4, s.Grid.Rows)
	assert.Equal(t, 4, s.Grid.Cols)
	assert.Equal(t, 0, s.PlayerCell)
	assert.Equal(t, 0, s.AgentCell)

	for s.Level < cfg.LevelsToWin {
		s.SkipLevel()
		require.NoError(t, s.Tick(testStart))
	}
	assert.Equal(t, 25, s.Level)
	assert.Equal(t, 27, s.Grid.Rows)
	assert.Equal(t, 27, s.Grid.Cols)
	assert.Equal(t, StatePlaying, s.State())

	// Clearing the final level wins the race.
	s.SkipLevel()
	require.NoError(t, s.Tick(testStart))
	assert.Equal(t, StateWon, s.State())
	assert.Equal(t, WinMessage, s.Message())
}

func TestExitOnStartCellClearsInstantly(t *testing.T) {
	// The exit may coincide with the player's start cell; the clear fires
	// on the next tick without any input.
	s := manualSession(NewGrid(3, 3), 0, nil)

	require.NoError(t, s.Tick(testStart))
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 4, s.Grid.Rows)
	assert.Equal(t, 4, s.Grid.Cols)
}

func TestAgentReachingExitEndsTheRace(t *testing.T) {
	s := manualSession(NewGrid(2, 2), 3, nil)
	s.AgentCell = 3

	require.NoError(t, s.Tick(testStart))
	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, GameOverMessage, s.Message())

	// Terminal states freeze the session.
	s.QueueMove(Right)
	s.SkipLevel()
	require.NoError(t, s.Tick(testStart))
	assert.Equal(t, 0, s.PlayerCell)
	assert.Equal(t, StateGameOver, s.State())
}

func TestPlayerWinsTieWithAgentOnExit(t *testing.T) {
	// Both markers standing on the exit counts as a clear, not a loss.
	grid := NewGrid(2, 2)
	grid.OpenWall(0, 1, Right)
	s := manualSession(grid, 1, nil)
	s.PlayerCell = 1
	s.AgentCell = 1

	require.NoError(t, s.Tick(testStart))
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, StatePlaying, s.State())
}

func TestRestartOnlyFromTerminalState(t *testing.T) {
	cfg := DefaultConfig()
	s, err := NewSession(cfg, rand.New(rand.NewSource(31)), testStart)
	require.NoError(t, err)

	// Ignored while the race is on.
	s.SkipLevel()
	require.NoError(t, s.Tick(testStart))
	levelBefore := s.Level
	require.NoError(t, s.Restart(testStart))
	assert.Equal(t, levelBefore, s.Level)

	// Lose the race, then restart.
	s.AgentCell = s.ExitCell
	s.PlayerCell = 0
	if s.ExitCell == 0 {
		// Keep the player off the exit so the loss check fires.
		s.PlayerCell = 1
	}
	require.NoError(t, s.Tick(testStart))
	require.Equal(t, StateGameOver, s.State())

	require.NoError(t, s.Restart(testStart))
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, cfg.InitialRows, s.Grid.Rows)
	assert.Equal(t, cfg.InitialCols, s.Grid.Cols)
	assert.Equal(t, 0, s.PlayerCell)
	assert.Equal(t, 0, s.AgentCell)
	assert.Equal(t, StatePlaying, s.State())
}
