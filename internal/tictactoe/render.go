package tictactoe

import (
	"fmt"
	"strings"
)

// String renders the grid with row and column headers followed by the status.
//
//	    0   1   2
//	  +---+---+---+
//	0 | X |   | O |
//	  +---+---+---+
//	...
func (that Position) String() string {
	var sb strings.Builder

	sb.WriteString("    0   1   2  \n")
	sb.WriteString("  +---+---+---+\n")
	for row := range Size {
		fmt.Fprintf(&sb, "%d |", row)
		for col := range Size {
			sb.WriteString(" " + CellSymbol(that.At(row, col)) + " |")
		}
		sb.WriteString("\n  +---+---+---+\n")
	}

	sb.WriteString("==== STATUS ====\n")
	if outcome := that.Outcome(); outcome.IsOver() {
		fmt.Fprintf(&sb, "Result: %s\n", outcome)
	} else {
		fmt.Fprintf(&sb, "Current Player: %s\n", that.turn)
	}

	return sb.String()
}

// CellSymbol is the one-character display form of a cell, a space when empty.
func CellSymbol(mark Mark) string {
	switch mark {
	case X, O:
		return mark.String()
	default:
		return " "
	}
}
