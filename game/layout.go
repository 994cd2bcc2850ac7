package game

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/they4kman/minesweep/util/collections"
)

type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

// MineLayout is the immutable result of mine placement: which cells are mines,
// and how many mines surround every other cell.
type MineLayout struct {
	width, height int
	numMines      int

	isMine        [][]bool
	neighborCount [][]int
}

// NewLayout builds a layout from an explicit list of mine positions
func NewLayout(width, height int, mines []Coord) (*MineLayout, error) {
	if err := validateParams(width, height, len(mines)); err != nil {
		return nil, err
	}

	seen := collections.NewSet[Coord]()
	for _, mine := range mines {
		if mine.Row < 0 || mine.Col < 0 || mine.Row >= height || mine.Col >= width {
			return nil, errors.Wrapf(ErrOutOfBounds, "mine at %v", mine)
		}
		if !seen.Add(mine) {
			return nil, errors.Wrapf(ErrInvalidMineCount, "duplicate mine at %v", mine)
		}
	}

	return newLayout(width, height, mines), nil
}

func newLayout(width, height int, mines []Coord) *MineLayout {
	layout := &MineLayout{
		width:         width,
		height:        height,
		numMines:      len(mines),
		isMine:        make([][]bool, height),
		neighborCount: make([][]int, height),
	}
	for row := 0; row < height; row++ {
		layout.isMine[row] = make([]bool, width)
		layout.neighborCount[row] = make([]int, width)
	}

	for _, mine := range mines {
		layout.isMine[mine.Row][mine.Col] = true
	}
	layout.countNeighbors()

	return layout
}

func (layout *MineLayout) countNeighbors() {
	for row := 0; row < layout.height; row++ {
		for col := 0; col < layout.width; col++ {
			if layout.isMine[row][col] {
				continue
			}

			count := 0
			for _, offset := range neighborOffsets {
				r, c := row+offset[0], col+offset[1]
				if layout.inBounds(r, c) && layout.isMine[r][c] {
					count++
				}
			}
			layout.neighborCount[row][col] = count
		}
	}
}

func (layout *MineLayout) Width() int {
	return layout.width
}

func (layout *MineLayout) Height() int {
	return layout.height
}

func (layout *MineLayout) NumMines() int {
	return layout.numMines
}

func (layout *MineLayout) NumCells() int {
	return layout.width * layout.height
}

func (layout *MineLayout) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < layout.height && col < layout.width
}

// IsMine reports whether the cell holds a mine; out-of-bounds cells never do
func (layout *MineLayout) IsMine(row, col int) bool {
	return layout.inBounds(row, col) && layout.isMine[row][col]
}

// NeighborCount returns the number of mines around a non-mine cell. It is 0
// for mine cells and for cells outside the board.
func (layout *MineLayout) NeighborCount(row, col int) int {
	if !layout.inBounds(row, col) {
		return 0
	}
	return layout.neighborCount[row][col]
}

func (layout *MineLayout) Mines() collections.Set[Coord] {
	mines := make(collections.Set[Coord], layout.numMines)
	for row, cols := range layout.isMine {
		for col, isMine := range cols {
			if isMine {
				mines.Add(Coord{row, col})
			}
		}
	}
	return mines
}
