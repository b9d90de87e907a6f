package game

import "time"

const (
	FrameRate    = 60
	TickDuration = time.Second / FrameRate
)

// Config carries the knobs that shape a race. The defaults match the
// classic ruleset: a 3x3 maze that grows by one row and one column per
// level, 25 levels to win, and an agent that steps every 200-300ms.
type Config struct {
	InitialRows    int
	InitialCols    int
	LevelsToWin    int
	GrowthPerLevel int
	AgentDelayMin  time.Duration
	AgentDelayMax  time.Duration
}

func DefaultConfig() Config {
	return Config{
		InitialRows:    3,
		InitialCols:    3,
		LevelsToWin:    25,
		GrowthPerLevel: 1,
		AgentDelayMin:  200 * time.Millisecond,
		AgentDelayMax:  300 * time.Millisecond,
	}
}
