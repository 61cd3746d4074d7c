package chess

import "errors"

var (
	ErrIllegalDestination = errors.New("invalid move")
	ErrSelfCheck          = errors.New("move leaves own king in check")
	ErrNotSelectable      = errors.New("square does not hold a piece of the side to move")
	ErrGameOver           = errors.New("game is over")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrSelectionPending   = errors.New("a square is already selected")
	ErrInvalidSquare      = errors.New("invalid square")
	ErrSquareOccupied     = errors.New("square occupied")
	ErrRosterFull         = errors.New("roster full")
)
