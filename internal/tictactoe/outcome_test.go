package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_Outcome(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected Outcome
	}{
		{name: "Empty board", board: ".../.../...", expected: Outcome{Status: InProgress}},
		{name: "Ongoing game", board: "XO./.X./..O", expected: Outcome{Status: InProgress}},
		{name: "Winner X by row", board: "XXX/OO./...", expected: Outcome{Status: Won, Winner: X}},
		{name: "Winner X by column", board: "XO./XO./X..", expected: Outcome{Status: Won, Winner: X}},
		{name: "Winner O by main diagonal", board: "OXX/XO./..O", expected: Outcome{Status: Won, Winner: O}},
		{name: "Winner O by anti-diagonal", board: "XXO/XO./O..", expected: Outcome{Status: Won, Winner: O}},
		{name: "Tie", board: "XOX/XOO/OXX", expected: Outcome{Status: Draw}},
		{name: "Full board with a line is a win", board: "XXX/OOX/XOO", expected: Outcome{Status: Won, Winner: X}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a position
			pos := mustParse(t, tt.board)

			// When: classifying it
			outcome := pos.Outcome()

			// Then: it matches the expected outcome
			assert.Equal(t, tt.expected, outcome)
			assert.Equal(t, tt.expected.IsOver(), pos.IsTerminal())
		})
	}
}

// Walks every position reachable from the empty board.
func TestReachablePositions(t *testing.T) {
	seen := map[string]bool{}

	var walk func(pos Position)
	walk = func(pos Position) {
		if seen[pos.Key()] {
			return
		}
		seen[pos.Key()] = true

		outcome := pos.Outcome()
		require.Contains(t, []Status{InProgress, Won, Draw}, outcome.Status)
		require.False(t, pos.hasLine(X) && pos.hasLine(O), "both sides won in %s", pos.Key())

		switch outcome.Status {
		case Won:
			require.True(t, pos.hasLine(outcome.Winner))
			require.Empty(t, pos.LegalMoves())
			return
		case Draw:
			require.False(t, pos.hasLine(X) || pos.hasLine(O))
			require.Equal(t, 9, pos.Ply())
			require.Empty(t, pos.LegalMoves())
			return
		}

		moves := pos.LegalMoves()
		require.Equal(t, 9, len(moves)+pos.Ply())

		empty := 0
		for _, cell := range pos.board {
			if cell == Empty {
				empty++
			}
		}
		require.Equal(t, empty, len(moves))

		for _, move := range moves {
			require.Equal(t, pos.Turn(), move.Mark)
			require.Equal(t, Empty, pos.At(move.Row, move.Col))

			child, err := pos.ApplyMove(move)
			require.NoError(t, err)
			require.Equal(t, pos.Ply()+1, child.Ply())
			require.Equal(t, pos.Turn().Opponent(), child.Turn())

			walk(child)
		}
	}

	walk(InitialPosition())

	// 5478 distinct legal positions exist in tic-tac-toe.
	assert.Len(t, seen, 5478)
}
