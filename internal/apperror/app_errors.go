package apperror

import "errors"

var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrInvalidSearchState = errors.New("search invoked on a finished position")
	ErrInvalidPosition    = errors.New("invalid position")

	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
)
