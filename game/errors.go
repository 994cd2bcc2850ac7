package game

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

var (
	ErrInvalidDimensions = stderrors.New("invalid board dimensions")
	ErrInvalidMineCount  = stderrors.New("invalid mine count")
	ErrOutOfBounds       = stderrors.New("cell out of bounds")
	ErrGameTerminal      = stderrors.New("game already over")
)

func validateParams(width, height, mines int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if mines < 0 || mines >= width*height {
		return errors.Wrapf(ErrInvalidMineCount,
			"%d mines on a %dx%d board (want 0 <= mines < %d)", mines, width, height, width*height)
	}
	return nil
}
