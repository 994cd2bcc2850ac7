package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Params are the fixed parameters of one game
type Params struct {
	Width, Height int
	Mines         int

	// Seed for mine placement; 0 picks one from the clock
	Seed int64
}

// Session owns all state of a single game, from mine placement until the
// outcome is decided or a new game replaces it.
type Session struct {
	params Params
	board  *Board
	rand   *rand.Rand
}

// NewSession validates params and generates a fresh layout. No layout is built
// when validation fails.
func NewSession(params Params) (*Session, error) {
	if err := validateParams(params.Width, params.Height, params.Mines); err != nil {
		return nil, err
	}

	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(params.Seed))

	layout := Generate(params.Width, params.Height, params.Mines, rng)

	Log.WithFields(logrus.Fields{
		"width":  params.Width,
		"height": params.Height,
		"mines":  params.Mines,
		"seed":   params.Seed,
	}).Info("new game")

	return &Session{
		params: params,
		board:  newBoard(layout),
		rand:   rng,
	}, nil
}

// NewSessionFromLayout starts a game over a prebuilt layout
func NewSessionFromLayout(layout *MineLayout) *Session {
	return &Session{
		params: Params{
			Width:  layout.width,
			Height: layout.height,
			Mines:  layout.numMines,
		},
		board: newBoard(layout),
		rand:  rand.New(rand.NewSource(1)),
	}
}

func (session *Session) Params() Params {
	return session.params
}

func (session *Session) Width() int {
	return session.params.Width
}

func (session *Session) Height() int {
	return session.params.Height
}

func (session *Session) Board() *Board {
	return session.board
}

// Rand is the session's random source, for anything that should replay with
// the same seed.
func (session *Session) Rand() *rand.Rand {
	return session.rand
}

// NextParams returns the parameters for the following game, with a seed drawn
// from this one.
func (session *Session) NextParams() Params {
	next := session.params
	next.Seed = session.rand.Int63()
	return next
}

func (session *Session) Reveal(row, col int) (bool, error) {
	return session.apply(CellAction{Row: row, Col: col, Action: Reveal})
}

func (session *Session) ToggleFlag(row, col int) (bool, error) {
	return session.apply(CellAction{Row: row, Col: col, Action: ToggleFlag})
}

func (session *Session) apply(action CellAction) (bool, error) {
	var (
		changed bool
		err     error
	)
	switch action.Action {
	case Reveal:
		changed, err = session.board.Reveal(action.Row, action.Col)
	case ToggleFlag:
		changed, err = session.board.ToggleFlag(action.Row, action.Col)
	}

	log := Log.WithFields(logrus.Fields{
		"action": action.Action,
		"cell":   Coord{action.Row, action.Col},
	})
	if err != nil {
		log.WithError(err).Debug("move rejected")
		return false, err
	}
	log.WithField("changed", changed).Debug("move applied")

	if changed && session.board.IsTerminal() {
		Log.WithField("outcome", session.board.Outcome()).Info("game over")
	}
	return changed, nil
}

func (session *Session) CellView(row, col int) (CellView, error) {
	return session.board.CellView(row, col)
}

func (session *Session) Outcome() Outcome {
	return session.board.Outcome()
}

func (session *Session) IsTerminal() bool {
	return session.board.IsTerminal()
}

// FlagsRemaining is the mine count minus the flags placed; it goes negative
// when the player over-flags.
func (session *Session) FlagsRemaining() int {
	return session.params.Mines - session.board.NumFlags()
}

// ScreenToCell maps a point on the board, measured from its top-left corner,
// to the cell under it. ok is false for points outside the board.
func ScreenToCell(x, y, boardPixelWidth, boardPixelHeight float64, width, height int) (row, col int, ok bool) {
	if boardPixelWidth <= 0 || boardPixelHeight <= 0 || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	if x < 0 || y < 0 || x >= boardPixelWidth || y >= boardPixelHeight {
		return 0, 0, false
	}

	col = int(x * float64(width) / boardPixelWidth)
	row = int(y * float64(height) / boardPixelHeight)
	if col >= width {
		col = width - 1
	}
	if row >= height {
		row = height - 1
	}
	return row, col, true
}
