package game

type CellState int
type Outcome int
type ViewKind int
type Action int

const (
	Hidden CellState = iota
	Flagged
	Revealed
)

const (
	InProgress Outcome = iota
	Lost
	Won
)

// ViewKind selects which of the four cell faces the presentation layer draws
const (
	ViewHidden ViewKind = iota
	ViewFlag
	ViewCount
	ViewMine
)

const (
	Reveal Action = iota
	ToggleFlag
)

func (state CellState) String() string {
	switch state {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

func (outcome Outcome) String() string {
	switch outcome {
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

func (action Action) String() string {
	switch action {
	case Reveal:
		return "reveal"
	case ToggleFlag:
		return "toggle-flag"
	default:
		return "unknown"
	}
}

// neighborOffsets are the 8 unit vectors around a cell, as (row, col) deltas
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
