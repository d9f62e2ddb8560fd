package tictactoe

import "fmt"

type Status uint8

const (
	InProgress Status = iota
	Won
	Draw
)

func (that Status) String() string {
	switch that {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Status(%d)", uint8(that))
	}
}

// Outcome classifies a position. Winner is set only when Status is Won.
type Outcome struct {
	Status Status
	Winner Mark
}

func (that Outcome) IsOver() bool {
	return that.Status != InProgress
}

func (that Outcome) String() string {
	if that.Status == Won {
		return "won by " + that.Winner.String()
	}

	return that.Status.String()
}

// WinLines holds the eight lines as row-major cell indexes:
// rows, then columns, then the main diagonal, then the anti-diagonal.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome is derived from the board on every call.
func (that Position) Outcome() Outcome {
	for _, line := range WinLines {
		a, b, c := that.board[line[0]], that.board[line[1]], that.board[line[2]]
		if a != Empty && a == b && b == c {
			return Outcome{Status: Won, Winner: a}
		}
	}

	// the game goes on while any cell is free
	for _, cell := range that.board {
		if cell == Empty {
			return Outcome{Status: InProgress}
		}
	}

	return Outcome{Status: Draw}
}

func (that Position) IsTerminal() bool {
	return that.Outcome().IsOver()
}

func (that Position) hasLine(mark Mark) bool {
	for _, line := range WinLines {
		if that.board[line[0]] == mark && that.board[line[1]] == mark && that.board[line[2]] == mark {
			return true
		}
	}

	return false
}
