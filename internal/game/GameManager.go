package game

import (
	"math/rand"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Intent is one input event from the UI, at most one of which takes effect
// per tick.
type Intent int

const (
	IntentMoveUp Intent = iota
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentSkipLevel
	IntentRestart
)

type GameTickMsg struct{}

// RaceOverMsg tells the UI the run ended, one way or the other.
type RaceOverMsg struct {
	Won        bool
	FinalLevel int
	Message    string
}

// GameManager runs the frame loop for a single race. It is the only writer
// of the session; the UI goroutine talks to it through the intent channel
// and reads state back through Snapshot.
type GameManager struct {
	sessionLock sync.RWMutex
	Session     *Session

	IntentChannel chan Intent
	UpdateChannel chan tea.Msg

	HighScores *HighScoreService
	PlayerName string

	IsRunning    bool
	raceOverSent bool
}

func NewGameManager(cfg Config, highScores *HighScoreService) (*GameManager, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session, err := NewSession(cfg, rng, time.Now())
	if err != nil {
		return nil, err
	}

	return &GameManager{
		Session:       session,
		IntentChannel: make(chan Intent, 10),
		UpdateChannel: make(chan tea.Msg, 16),
		HighScores:    highScores,
	}, nil
}

// StartGameLoop ticks the session at the frame rate until Stop. Intents are
// folded in between ticks; within one tick the latest movement intent wins
// because each one overwrites the pending move.
func (gm *GameManager) StartGameLoop() {
	if gm.IsRunning {
		return
	}
	gm.IsRunning = true
	log.Info("Game loop started", "player", gm.PlayerName)

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for gm.IsRunning {
		select {
		case <-ticker.C:
			gm.processGameTick()
		case intent := <-gm.IntentChannel:
			gm.processIntent(intent)
		}
	}
	log.Info("Game loop stopped", "player", gm.PlayerName)
}

func (gm *GameManager) Stop() {
	gm.IsRunning = false
}

func (gm *GameManager) processGameTick() {
	gm.sessionLock.Lock()
	err := gm.Session.Tick(time.Now())
	state := gm.Session.State()
	level := gm.Session.Level
	message := gm.Session.Message()
	gm.sessionLock.Unlock()

	if err != nil {
		// A failed level load means the maze invariant broke; there is
		// nothing sane to keep racing on.
		log.Error("Level load failed, stopping game loop", "error", err)
		gm.IsRunning = false
		return
	}

	if (state == StateGameOver || state == StateWon) && !gm.raceOverSent {
		gm.raceOverSent = true
		gm.saveRun(level, state == StateWon)
		gm.publish(RaceOverMsg{Won: state == StateWon, FinalLevel: level, Message: message})
	}

	gm.publish(GameTickMsg{})
}

func (gm *GameManager) processIntent(intent Intent) {
	gm.sessionLock.Lock()
	defer gm.sessionLock.Unlock()

	switch intent {
	case IntentMoveUp:
		gm.Session.QueueMove(Up)
	case IntentMoveDown:
		gm.Session.QueueMove(Down)
	case IntentMoveLeft:
		gm.Session.QueueMove(Left)
	case IntentMoveRight:
		gm.Session.QueueMove(Right)
	case IntentSkipLevel:
		gm.Session.SkipLevel()
	case IntentRestart:
		if err := gm.Session.Restart(time.Now()); err != nil {
			log.Error("Restart failed, stopping game loop", "error", err)
			gm.IsRunning = false
			return
		}
		gm.raceOverSent = false
	}
}

func (gm *GameManager) saveRun(level int, won bool) {
	if gm.HighScores == nil {
		return
	}
	if err := gm.HighScores.SaveRun(gm.PlayerName, level, won); err != nil {
		log.Error("High score persist err", "error", err)
	}
}

// Snapshot is the UI's read path; it never blocks the loop for long.
func (gm *GameManager) Snapshot() Snapshot {
	gm.sessionLock.RLock()
	defer gm.sessionLock.RUnlock()
	return gm.Session.Snapshot()
}

// publish drops the message when the UI is not draining; the next tick
// carries the same information anyway.
func (gm *GameManager) publish(msg tea.Msg) {
	select {
	case gm.UpdateChannel <- msg:
	default:
	}
}
