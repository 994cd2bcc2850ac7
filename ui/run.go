package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/pkg/errors"
	"github.com/they4kman/minesweep/director/random"
	"github.com/they4kman/minesweep/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	headerHeight = 50
	cellGap      = 1
)

var cellColors = map[game.ViewKind]color.Color{
	game.ViewHidden: colornames.Slategray,
	game.ViewFlag:   colornames.Orange,
	game.ViewCount:  colornames.Whitesmoke,
	game.ViewMine:   colornames.Crimson,
}

// Run opens the game window and plays session, and the games that follow it,
// until the window is closed. It must be called from within pixelgl.Run.
func Run(config game.Config, session *game.Session) error {
	if config.WindowWidth <= 0 || config.WindowHeight <= 0 {
		return errors.Errorf("invalid window size %vx%v", config.WindowWidth, config.WindowHeight)
	}
	boardWidth, boardHeight := config.WindowWidth, config.WindowHeight

	cfg := pixelgl.WindowConfig{
		Title:  "minesweep",
		Bounds: pixel.R(0, 0, boardWidth, boardHeight+headerHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer win.Destroy()

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	statusText := text.New(pixel.V(20, boardHeight+headerHeight/2-5), atlas)
	labelText := text.New(pixel.ZV, atlas)
	labelText.Color = colornames.Black
	imd := imdraw.New(nil)

	var queue game.InputQueue

	var director game.Director
	var directorTick <-chan time.Time
	if config.Director {
		if config.DirectorInterval <= 0 {
			return errors.Errorf("invalid director interval %v", config.DirectorInterval)
		}
		director = random.New(session.Rand())
		ticker := time.NewTicker(config.DirectorInterval)
		defer ticker.Stop()
		directorTick = ticker.C
	}

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if session.IsTerminal() {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				next, err := game.NewSession(session.NextParams())
				if err != nil {
					return err
				}
				session = next
				if config.Director {
					director = random.New(session.Rand())
				}
			}
		} else {
			if win.JustPressed(pixelgl.MouseButtonLeft) || win.JustPressed(pixelgl.MouseButtonRight) {
				pos := win.MousePosition()
				row, col, ok := game.ScreenToCell(
					pos.X, boardHeight-pos.Y,
					boardWidth, boardHeight,
					session.Width(), session.Height(),
				)
				if ok {
					if win.JustPressed(pixelgl.MouseButtonLeft) {
						queue.Push(game.CellAction{Row: row, Col: col, Action: game.Reveal})
					}
					if win.JustPressed(pixelgl.MouseButtonRight) {
						queue.Push(game.CellAction{Row: row, Col: col, Action: game.ToggleFlag})
					}
				}
			}

			if director != nil {
				select {
				case <-directorTick:
					director.Act(session, &queue)
				default:
				}
			}
		}
		queue.Drain(session)

		win.Clear(colornames.Gainsboro)
		drawStatus(statusText, session)
		statusText.Draw(win, pixel.IM)
		drawBoard(win, imd, labelText, session, boardWidth, boardHeight)

		win.Update()
	}
	return nil
}

func drawStatus(status *text.Text, session *game.Session) {
	status.Clear()
	status.Color = colornames.Black
	fmt.Fprintf(status, "%03d", session.FlagsRemaining())

	switch session.Outcome() {
	case game.Won:
		status.Color = colornames.Green
		fmt.Fprint(status, "   WIN!   (Enter for a new game)")
	case game.Lost:
		status.Color = colornames.Red
		fmt.Fprint(status, "   LOSE :(   (Enter for a new game)")
	}
}

func drawBoard(win *pixelgl.Window, imd *imdraw.IMDraw, labels *text.Text, session *game.Session, boardWidth, boardHeight float64) {
	cellWidth := boardWidth / float64(session.Width())
	cellHeight := boardHeight / float64(session.Height())

	imd.Clear()
	labels.Clear()
	for row := 0; row < session.Height(); row++ {
		for col := 0; col < session.Width(); col++ {
			view, err := session.CellView(row, col)
			if err != nil {
				continue
			}

			// pixel's origin is bottom-left; row 0 is drawn at the top
			lo := pixel.V(float64(col)*cellWidth, boardHeight-float64(row+1)*cellHeight)
			hi := lo.Add(pixel.V(cellWidth, cellHeight))

			imd.Color = cellColors[view.Kind]
			imd.Push(lo.Add(pixel.V(cellGap, cellGap)), hi.Sub(pixel.V(cellGap, cellGap)))
			imd.Rectangle(0) // 0 = filled

			if s := label(view); s != "" {
				center := pixel.R(lo.X, lo.Y, hi.X, hi.Y).Center()
				bounds := labels.BoundsOf(s)
				labels.Dot = center.Sub(pixel.V(bounds.W()/2, bounds.H()/4))
				fmt.Fprint(labels, s)
			}
		}
	}
	imd.Draw(win)
	labels.Draw(win, pixel.IM)
}

func label(view game.CellView) string {
	switch view.Kind {
	case game.ViewFlag:
		return "Flag"
	case game.ViewMine:
		return "X"
	case game.ViewCount:
		if view.AdjacentMines == 0 {
			return ""
		}
		return strconv.Itoa(view.AdjacentMines)
	default:
		return ""
	}
}
