package game

import "github.com/pkg/errors"

// Board tracks the per-cell reveal/flag state of one game over a fixed layout
type Board struct {
	layout *MineLayout
	cells  [][]CellState

	numFlags        int
	numRevealedSafe int
	mineRevealed    bool

	outcome Outcome
}

func newBoard(layout *MineLayout) *Board {
	board := &Board{
		layout: layout,
		cells:  make([][]CellState, layout.height),
	}
	for row := range board.cells {
		board.cells[row] = make([]CellState, layout.width)
	}
	board.outcome = board.evaluateOutcome()
	return board
}

func (board *Board) Layout() *MineLayout {
	return board.layout
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

func (board *Board) State(row, col int) (CellState, error) {
	if err := board.checkBounds(row, col); err != nil {
		return Hidden, err
	}
	return board.cells[row][col], nil
}

func (board *Board) Outcome() Outcome {
	return board.outcome
}

func (board *Board) IsTerminal() bool {
	return board.outcome != InProgress
}

func (board *Board) checkBounds(row, col int) error {
	if !board.layout.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "%v on a %dx%d board",
			Coord{row, col}, board.layout.width, board.layout.height)
	}
	return nil
}

func (board *Board) checkMove(row, col int) error {
	if err := board.checkBounds(row, col); err != nil {
		return err
	}
	if board.IsTerminal() {
		return errors.Wrapf(ErrGameTerminal, "game %s", board.outcome)
	}
	return nil
}

// Reveal uncovers a hidden cell. Flagged and already-revealed cells are left
// alone. Neighboring empty cells are not cascaded into.
func (board *Board) Reveal(row, col int) (bool, error) {
	if err := board.checkMove(row, col); err != nil {
		return false, err
	}
	if board.cells[row][col] != Hidden {
		return false, nil
	}

	board.cells[row][col] = Revealed
	if board.layout.isMine[row][col] {
		board.mineRevealed = true
	} else {
		board.numRevealedSafe++
	}

	board.outcome = board.evaluateOutcome()
	return true, nil
}

// ToggleFlag flips a cell between Hidden and Flagged; revealed cells are left alone
func (board *Board) ToggleFlag(row, col int) (bool, error) {
	if err := board.checkMove(row, col); err != nil {
		return false, err
	}

	switch board.cells[row][col] {
	case Hidden:
		board.cells[row][col] = Flagged
		board.numFlags++
	case Flagged:
		board.cells[row][col] = Hidden
		board.numFlags--
	default:
		return false, nil
	}

	board.outcome = board.evaluateOutcome()
	return true, nil
}

// evaluateOutcome requires every safe cell revealed and exactly as many flags
// as mines for a win.
func (board *Board) evaluateOutcome() Outcome {
	if board.outcome != InProgress {
		return board.outcome
	}

	numSafe := board.layout.NumCells() - board.layout.numMines
	switch {
	case board.mineRevealed:
		return Lost
	case board.numRevealedSafe == numSafe && board.numFlags == board.layout.numMines:
		return Won
	default:
		return InProgress
	}
}
