package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

type SessionState int

const (
	StatePlaying SessionState = iota
	StateLevelCleared
	StateGameOver
	StateWon
)

func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLevelCleared:
		return "level_cleared"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	}
	return "unknown"
}

const (
	WinMessage      = "YOU WIN!"
	GameOverMessage = "GAME OVER!"
)

// Session owns one run of the race: the current maze, the three tracked
// cells, the agent's remaining playback queue and its timing. All mutation
// happens synchronously inside Tick or an intent call on the game loop
// goroutine; renderers only ever see a Snapshot.
type Session struct {
	cfg Config
	rng *rand.Rand

	Level int
	Grid  *Grid

	PlayerCell int
	AgentCell  int
	ExitCell   int

	pendingMove Direction
	agentQueue  []int
	stepDelay   time.Duration
	lastStepAt  time.Time

	state SessionState
}

// NewSession starts a run at level 1 on the initial grid size.
func NewSession(cfg Config, rng *rand.Rand, now time.Time) (*Session, error) {
	s := &Session{
		cfg:         cfg,
		rng:         rng,
		Level:       1,
		pendingMove: Waiting,
	}

	if err := s.loadLevel(cfg.InitialRows, cfg.InitialCols, now); err != nil {
		return nil, err
	}
	return s, nil
}

// loadLevel carves a fresh maze, picks an exit uniformly at random (cell 0
// is not excluded, an instant clear is allowed) and precomputes the agent's
// route from cell 0.
func (s *Session) loadLevel(rows, cols int, now time.Time) error {
	log.Info("Generating level", "level", s.Level, "rows", rows, "cols", cols)

	grid := NewGrid(rows, cols)
	Carve(grid, s.rng)

	exit := s.rng.Intn(grid.CellCount())
	path, err := ComputePath(grid, 0, exit)
	if err != nil {
		return fmt.Errorf("loading level %d: %w", s.Level, err)
	}

	s.Grid = grid
	s.PlayerCell = 0
	s.AgentCell = 0
	s.ExitCell = exit
	// The agent already stands on the first path cell, so the playback
	// queue is everything after it.
	s.agentQueue = path[1:]
	s.lastStepAt = now
	s.state = StatePlaying
	return nil
}

// Tick runs one frame of the race. Evaluation order matters: termination
// check first, then the player's pending move, then the agent playback
// step. A terminal state freezes the session until Restart.
func (s *Session) Tick(now time.Time) error {
	switch s.state {
	case StateGameOver, StateWon:
		return nil
	}

	if s.PlayerCell == s.ExitCell {
		if s.Level < s.cfg.LevelsToWin {
			s.state = StateLevelCleared
			s.Level++
			rows := s.Grid.Rows + s.cfg.GrowthPerLevel
			cols := s.Grid.Cols + s.cfg.GrowthPerLevel
			if err := s.loadLevel(rows, cols, now); err != nil {
				return err
			}
		} else {
			s.state = StateWon
			return nil
		}
	} else if s.AgentCell == s.ExitCell {
		s.state = StateGameOver
		return nil
	}

	s.applyPlayerMove()
	s.stepAgent(now)
	return nil
}

// applyPlayerMove honors the pending intent only when the wall on that side
// is open. The intent is spent either way, so a held key never queues up
// extra moves.
func (s *Session) applyPlayerMove() {
	cell := s.Grid.Cells[s.PlayerCell]

	switch {
	case s.pendingMove == Up && !cell.North:
		s.PlayerCell -= s.Grid.Cols
	case s.pendingMove == Down && !cell.South:
		s.PlayerCell += s.Grid.Cols
	case s.pendingMove == Left && !cell.West:
		s.PlayerCell--
	case s.pendingMove == Right && !cell.East:
		s.PlayerCell++
	}

	s.pendingMove = Waiting
}

// stepAgent advances the playback queue under the real-time delay policy.
// The threshold is redrawn every tick, not once per step; the wait ends on
// whichever tick's sample the elapsed time happens to beat. Once the queue
// is drained the agent stays put on its final cell.
func (s *Session) stepAgent(now time.Time) {
	s.stepDelay = s.cfg.AgentDelayMin
	if spread := s.cfg.AgentDelayMax - s.cfg.AgentDelayMin; spread > 0 {
		s.stepDelay += time.Duration(s.rng.Int63n(int64(spread)))
	}

	if len(s.agentQueue) > 0 && now.Sub(s.lastStepAt) >= s.stepDelay {
		s.AgentCell = s.agentQueue[0]
		s.agentQueue = s.agentQueue[1:]
		s.lastStepAt = now
	}
}

// QueueMove records a movement intent for the next tick. Repeated intents
// within one tick keep only the latest.
func (s *Session) QueueMove(dir Direction) {
	if s.state != StatePlaying {
		return
	}
	s.pendingMove = dir
}

// SkipLevel teleports the player onto the exit; the ordinary clear
// transition fires on the next tick.
func (s *Session) SkipLevel() {
	if s.state != StatePlaying {
		return
	}
	s.PlayerCell = s.ExitCell
}

// Restart is only honored from an end screen. It resets the run to level 1
// at the initial grid size.
func (s *Session) Restart(now time.Time) error {
	if s.state != StateGameOver && s.state != StateWon {
		return nil
	}

	s.Level = 1
	s.pendingMove = Waiting
	s.agentQueue = nil
	return s.loadLevel(s.cfg.InitialRows, s.cfg.InitialCols, now)
}

func (s *Session) State() SessionState {
	return s.state
}

// Message is the end-screen text, empty while the race is still on.
func (s *Session) Message() string {
	switch s.state {
	case StateWon:
		return WinMessage
	case StateGameOver:
		return GameOverMessage
	}
	return ""
}
