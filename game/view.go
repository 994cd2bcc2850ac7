package game

// CellView is everything the presentation layer needs to draw one cell
type CellView struct {
	State CellState
	Kind  ViewKind

	// AdjacentMines is set only when Kind is ViewCount
	AdjacentMines int
}

func (board *Board) CellView(row, col int) (CellView, error) {
	state, err := board.State(row, col)
	if err != nil {
		return CellView{}, err
	}

	view := CellView{State: state}
	switch {
	case state == Hidden:
		view.Kind = ViewHidden
	case state == Flagged:
		view.Kind = ViewFlag
	case board.layout.isMine[row][col]:
		view.Kind = ViewMine
	default:
		view.Kind = ViewCount
		view.AdjacentMines = board.layout.neighborCount[row][col]
	}
	return view, nil
}
