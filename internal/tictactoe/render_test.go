package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_String(t *testing.T) {
	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a position with X to move
		pos := mustParse(t, "XX./.O./O..")

		// Then: the grid is drawn row by row with the side to move
		expected := "    0   1   2  \n" +
			"  +---+---+---+\n" +
			"0 | X | X |   |\n" +
			"  +---+---+---+\n" +
			"1 |   | O |   |\n" +
			"  +---+---+---+\n" +
			"2 | O |   |   |\n" +
			"  +---+---+---+\n" +
			"==== STATUS ====\n" +
			"Current Player: X\n"
		assert.Equal(t, expected, pos.String())
	})

	t.Run("Finished game", func(t *testing.T) {
		pos := mustParse(t, "XXX/OO./...")
		assert.Contains(t, pos.String(), "Result: won by X\n")
	})
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "O placing at (2, 1)", Move{Row: 2, Col: 1, Mark: O}.String())
}
