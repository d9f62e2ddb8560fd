package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Size is the length of a board side.
const Size = 3

const cellCount = Size * Size

// Mark is the content of a cell and also names the side to move.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

var ErrInvalidMark = errors.New("invalid mark")

// Opponent returns the other side. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	case Empty:
		return "E"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

// ParseMark accepts "X" or "O" in either case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidMark, s)
	}
}

// Position is an immutable game snapshot. The zero value is not a valid position,
// use InitialPosition, NewPosition or ParsePosition.
type Position struct {
	board [cellCount]Mark
	turn  Mark
	ply   int
}

// InitialPosition returns the empty board with X to move.
func InitialPosition() Position {
	return Position{turn: X}
}

// NewPosition builds a position from a row-major grid. The side to move is derived
// from the mark counts: X when they are equal, O when X leads by one.
func NewPosition(grid [Size][Size]Mark) (Position, error) {
	var board [cellCount]Mark
	for row := range Size {
		for col := range Size {
			board[row*Size+col] = grid[row][col]
		}
	}

	return newPositionFromBoard(board)
}

func newPositionFromBoard(board [cellCount]Mark) (Position, error) {
	var xs, os int
	for i, cell := range board {
		switch cell {
		case X:
			xs++
		case O:
			os++
		case Empty:
		default:
			return Position{}, fmt.Errorf("%w: cell %d holds %s", apperror.ErrInvalidPosition, i, cell)
		}
	}

	pos := Position{board: board, ply: xs + os}

	switch xs - os {
	case 0:
		pos.turn = X
	case 1:
		pos.turn = O
	default:
		return Position{}, fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidPosition, xs, os)
	}

	if pos.hasLine(X) && pos.hasLine(O) {
		return Position{}, fmt.Errorf("%w: both sides hold a completed line", apperror.ErrInvalidPosition)
	}

	return pos, nil
}

// ParsePosition reads nine cells written as X, O and one of ".", "E", "_" or "-" for
// an empty cell. Whitespace, "/" and "|" are ignored, so "XX./.O./O.." and a
// multi-line grid both work.
func ParsePosition(s string) (Position, error) {
	var board [cellCount]Mark

	n := 0
	for _, r := range s {
		var cell Mark
		switch r {
		case ' ', '\t', '\n', '\r', '/', '|':
			continue
		case 'X', 'x':
			cell = X
		case 'O', 'o':
			cell = O
		case '.', 'E', 'e', '_', '-':
			cell = Empty
		default:
			return Position{}, fmt.Errorf("%w: unexpected character %q", apperror.ErrInvalidPosition, r)
		}

		if n == cellCount {
			return Position{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidPosition, cellCount)
		}

		board[n] = cell
		n++
	}

	if n != cellCount {
		return Position{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidPosition, n, cellCount)
	}

	return newPositionFromBoard(board)
}

// At returns the content of a cell. Out of range coordinates read as Empty.
func (that Position) At(row, col int) Mark {
	if !inRange(row, col) {
		return Empty
	}

	return that.board[row*Size+col]
}

// Turn is the side to move.
func (that Position) Turn() Mark {
	return that.turn
}

// Ply is the number of marks placed so far.
func (that Position) Ply() int {
	return that.ply
}

// Board returns a copy of the grid.
func (that Position) Board() [Size][Size]Mark {
	var grid [Size][Size]Mark
	for i, cell := range that.board {
		grid[i/Size][i%Size] = cell
	}

	return grid
}

// Key is a compact form of the position: nine cells followed by the side to move,
// e.g. "XX..O.O..X".
func (that Position) Key() string {
	var sb strings.Builder
	sb.Grow(cellCount + 1)

	for _, cell := range that.board {
		if cell == Empty {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(cell.String())
	}
	sb.WriteString(that.turn.String())

	return sb.String()
}

func inRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
