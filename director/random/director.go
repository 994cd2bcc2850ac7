package random

import (
	"math/rand"

	"github.com/they4kman/minesweep/game"
)

// Director reveals a uniformly chosen hidden cell each time it acts
type Director struct {
	rand *rand.Rand
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Act(session *game.Session, queue *game.InputQueue) {
	if session.IsTerminal() {
		return
	}

	board := session.Board()
	hiddenCells := make([]game.Coord, 0, session.Width()*session.Height())
	for row := 0; row < session.Height(); row++ {
		for col := 0; col < session.Width(); col++ {
			if state, _ := board.State(row, col); state == game.Hidden {
				hiddenCells = append(hiddenCells, game.Coord{Row: row, Col: col})
			}
		}
	}
	if len(hiddenCells) == 0 {
		return
	}

	cell := hiddenCells[director.rand.Intn(len(hiddenCells))]
	queue.Push(game.CellAction{Row: cell.Row, Col: cell.Col, Action: game.Reveal})
}
