package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minesweep/game"
)

// newTwoByTwo returns a 2x2 game with its single mine at (0, 0)
func newTwoByTwo(t *testing.T) *game.Session {
	layout, err := game.NewLayout(2, 2, []game.Coord{{Row: 0, Col: 0}})
	require.NoError(t, err)
	return game.NewSessionFromLayout(layout)
}

func cellState(t *testing.T, session *game.Session, row, col int) game.CellState {
	view, err := session.CellView(row, col)
	require.NoError(t, err)
	return view.State
}

func TestWin(t *testing.T) {
	session := newTwoByTwo(t)

	for _, cell := range []game.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		changed, err := session.Reveal(cell.Row, cell.Col)
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, game.InProgress, session.Outcome())
	}

	changed, err := session.ToggleFlag(0, 0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, game.Won, session.Outcome())
	assert.True(t, session.IsTerminal())
}

func TestLoss(t *testing.T) {
	session := newTwoByTwo(t)

	changed, err := session.Reveal(0, 0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, game.Lost, session.Outcome())
	assert.True(t, session.IsTerminal())

	changed, err = session.Reveal(1, 1)
	assert.ErrorIs(t, err, game.ErrGameTerminal)
	assert.False(t, changed)
	assert.Equal(t, game.Hidden, cellState(t, session, 1, 1))

	_, err = session.ToggleFlag(1, 1)
	assert.ErrorIs(t, err, game.ErrGameTerminal)
	assert.Equal(t, game.Hidden, cellState(t, session, 1, 1))
	assert.Equal(t, game.Lost, session.Outcome())
}

func TestWinRequiresExactFlagCount(t *testing.T) {
	layout, err := game.NewLayout(3, 1, []game.Coord{{Row: 0, Col: 0}})
	require.NoError(t, err)
	session := game.NewSessionFromLayout(layout)

	_, err = session.Reveal(0, 1)
	require.NoError(t, err)
	_, err = session.Reveal(0, 2)
	require.NoError(t, err)

	// every safe cell is revealed, but nothing is flagged
	assert.Equal(t, game.InProgress, session.Outcome())

	_, err = session.ToggleFlag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, game.Won, session.Outcome())
}

func TestOverFlaggingNeverWins(t *testing.T) {
	session := newTwoByTwo(t)

	_, err := session.ToggleFlag(0, 0)
	require.NoError(t, err)
	_, err = session.ToggleFlag(1, 1)
	require.NoError(t, err)
	_, err = session.Reveal(0, 1)
	require.NoError(t, err)
	_, err = session.Reveal(1, 0)
	require.NoError(t, err)

	assert.Equal(t, game.InProgress, session.Outcome())
	assert.Equal(t, -1, session.FlagsRemaining())
}

func TestRevealIsNoOpOnRevealedOrFlagged(t *testing.T) {
	session := newTwoByTwo(t)

	_, err := session.Reveal(1, 1)
	require.NoError(t, err)
	changed, err := session.Reveal(1, 1)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, game.Revealed, cellState(t, session, 1, 1))

	_, err = session.ToggleFlag(0, 0)
	require.NoError(t, err)
	changed, err = session.Reveal(0, 0)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, game.Flagged, cellState(t, session, 0, 0))
	assert.Equal(t, game.InProgress, session.Outcome())
}

func TestToggleFlagIsItsOwnInverse(t *testing.T) {
	session := newTwoByTwo(t)

	_, err := session.ToggleFlag(1, 0)
	require.NoError(t, err)
	assert.Equal(t, game.Flagged, cellState(t, session, 1, 0))
	assert.Equal(t, 0, session.FlagsRemaining())

	_, err = session.ToggleFlag(1, 0)
	require.NoError(t, err)
	assert.Equal(t, game.Hidden, cellState(t, session, 1, 0))
	assert.Equal(t, 1, session.FlagsRemaining())
}

func TestToggleFlagIsNoOpOnRevealed(t *testing.T) {
	session := newTwoByTwo(t)

	_, err := session.Reveal(1, 1)
	require.NoError(t, err)

	changed, err := session.ToggleFlag(1, 1)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, game.Revealed, cellState(t, session, 1, 1))
	assert.Equal(t, 0, session.Board().NumFlags())
}

func TestOutOfBounds(t *testing.T) {
	session := newTwoByTwo(t)

	for _, cell := range []game.Coord{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 2}} {
		changed, err := session.Reveal(cell.Row, cell.Col)
		assert.ErrorIs(t, err, game.ErrOutOfBounds, "reveal %v", cell)
		assert.False(t, changed)

		changed, err = session.ToggleFlag(cell.Row, cell.Col)
		assert.ErrorIs(t, err, game.ErrOutOfBounds, "flag %v", cell)
		assert.False(t, changed)

		_, err = session.CellView(cell.Row, cell.Col)
		assert.ErrorIs(t, err, game.ErrOutOfBounds, "view %v", cell)
	}

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			assert.Equal(t, game.Hidden, cellState(t, session, row, col))
		}
	}
	assert.Equal(t, game.InProgress, session.Outcome())
}

func TestRevealDoesNotCascade(t *testing.T) {
	layout, err := game.NewLayout(4, 4, []game.Coord{{Row: 3, Col: 3}})
	require.NoError(t, err)
	session := game.NewSessionFromLayout(layout)

	_, err = session.Reveal(0, 0)
	require.NoError(t, err)

	view, err := session.CellView(0, 0)
	require.NoError(t, err)
	assert.Equal(t, game.ViewCount, view.Kind)
	assert.Equal(t, 0, view.AdjacentMines)

	assert.Equal(t, game.Hidden, cellState(t, session, 0, 1))
	assert.Equal(t, game.Hidden, cellState(t, session, 1, 1))
}

func TestCellView(t *testing.T) {
	session := newTwoByTwo(t)

	view, err := session.CellView(1, 1)
	require.NoError(t, err)
	assert.Equal(t, game.CellView{State: game.Hidden, Kind: game.ViewHidden}, view)

	_, err = session.ToggleFlag(1, 1)
	require.NoError(t, err)
	view, err = session.CellView(1, 1)
	require.NoError(t, err)
	assert.Equal(t, game.CellView{State: game.Flagged, Kind: game.ViewFlag}, view)

	_, err = session.Reveal(0, 1)
	require.NoError(t, err)
	view, err = session.CellView(0, 1)
	require.NoError(t, err)
	assert.Equal(t, game.CellView{State: game.Revealed, Kind: game.ViewCount, AdjacentMines: 1}, view)

	_, err = session.Reveal(0, 0)
	require.NoError(t, err)
	view, err = session.CellView(0, 0)
	require.NoError(t, err)
	assert.Equal(t, game.CellView{State: game.Revealed, Kind: game.ViewMine}, view)
}
