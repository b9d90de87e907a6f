package game

// Direction is a movement code for both the player's intents and the
// generator's carving steps.
type Direction int

const (
	Waiting Direction = iota - 1
	Up
	Down
	Left
	Right
)

var AllDirections = []Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Waiting:
		return "waiting"
	}
	return "unknown"
}
