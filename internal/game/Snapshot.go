package game

// WallSet mirrors one cell's wall flags for renderers.
type WallSet struct {
	North bool
	South bool
	East  bool
	West  bool
}

// Snapshot is the read-only view of a session handed to the renderer once
// per tick. It copies everything the renderer needs so the UI goroutine
// never touches live session state.
type Snapshot struct {
	Level      int
	Rows       int
	Cols       int
	Walls      []WallSet
	PlayerCell int
	AgentCell  int
	ExitCell   int
	State      SessionState
	Message    string
}

func (s *Session) Snapshot() Snapshot {
	walls := make([]WallSet, len(s.Grid.Cells))
	for i, c := range s.Grid.Cells {
		walls[i] = WallSet{North: c.North, South: c.South, East: c.East, West: c.West}
	}

	return Snapshot{
		Level:      s.Level,
		Rows:       s.Grid.Rows,
		Cols:       s.Grid.Cols,
		Walls:      walls,
		PlayerCell: s.PlayerCell,
		AgentCell:  s.AgentCell,
		ExitCell:   s.ExitCell,
		State:      s.state,
		Message:    s.Message(),
	}
}
