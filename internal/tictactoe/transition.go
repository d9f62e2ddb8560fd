package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

var ErrInvalidCell = errors.New("invalid cell coordinates")

// Move places Mark at (Row, Col). Moves are plain values compared with ==.
type Move struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Mark Mark `json:"mark"`
}

// Cell returns the row-major index of the target cell.
func (that Move) Cell() int {
	return that.Row*Size + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("%s placing at (%d, %d)", that.Mark, that.Row, that.Col)
}

// LegalMoves lists the empty cells in row-major order for the side to move.
// A finished position has no legal moves.
func (that Position) LegalMoves() []Move {
	if that.IsTerminal() {
		return nil
	}

	return that.emptyCells()
}

// ApplyMove returns the position after move. The receiver is left untouched.
func (that Position) ApplyMove(move Move) (Position, error) {
	if err := that.validateMove(move); err != nil {
		return Position{}, fmt.Errorf("%w: %s: %w", apperror.ErrIllegalMove, move, err)
	}

	next := that
	next.board[move.Cell()] = move.Mark
	next.turn = toggleMark(move.Mark)
	next.ply++

	return next, nil
}

// validateMove - checks if the move is valid.
func (that Position) validateMove(move Move) error {
	if !inRange(move.Row, move.Col) {
		return ErrInvalidCell
	}

	if that.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if that.turn != move.Mark {
		return apperror.ErrNotYourTurn
	}

	if that.board[move.Cell()] != Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

func toggleMark(currentMark Mark) Mark {
	if currentMark == X {
		return O
	}
	return X
}
