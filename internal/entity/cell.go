package entity

// CellState - what occupies a single cell of the board.
type CellState uint8

const (
	Empty CellState = iota
	Human
	Opponent
)

func (that CellState) String() string {
	switch that {
	case Empty:
		return "empty"
	case Human:
		return "human"
	case Opponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Outcome - the state of the game derived from the board.
type Outcome uint8

const (
	InProgress Outcome = iota
	HumanWins
	OpponentWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "in progress"
	case HumanWins:
		return "human wins"
	case OpponentWins:
		return "opponent wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

func (that Outcome) IsFinished() bool {
	return that != InProgress
}

// Position - a cell address on the board.
type Position struct {
	Row int
	Col int
}
