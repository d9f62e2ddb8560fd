package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

func TestPosition_ApplyMove(t *testing.T) {
	t.Run("ApplyMove", func(t *testing.T) {
		// Given: the initial position
		pos := InitialPosition()

		// When: player X places a mark in the corner
		next, err := pos.ApplyMove(Move{Row: 0, Col: 0, Mark: X})
		require.NoError(t, err)

		// Then: the new position holds the mark and O is to move
		assert.Equal(t, X, next.At(0, 0))
		assert.Equal(t, O, next.Turn())
		assert.Equal(t, 1, next.Ply())

		// Then: the original position is unchanged
		assert.Equal(t, InitialPosition(), pos)
		assert.Equal(t, Empty, pos.At(0, 0))
	})

	t.Run("Same move twice yields identical positions", func(t *testing.T) {
		// Given: a position in the middle of a game
		pos := mustParse(t, "X../.O./...")
		move := Move{Row: 2, Col: 2, Mark: X}

		// When: the same move is applied twice to the same position
		first, err := pos.ApplyMove(move)
		require.NoError(t, err)
		second, err := pos.ApplyMove(move)
		require.NoError(t, err)

		// Then: both results are equal
		assert.Equal(t, first, second)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: player X has taken cell (0, 0)
		pos, err := InitialPosition().ApplyMove(Move{Row: 0, Col: 0, Mark: X})
		require.NoError(t, err)

		// When: player O tries to move to the same cell
		_, err = pos.ApplyMove(Move{Row: 0, Col: 0, Mark: O})

		// Then: an illegal move error caused by the occupied cell is returned
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the position remains unchanged
		assert.Equal(t, X, pos.At(0, 0))
		assert.Equal(t, O, pos.Turn())
		assert.Equal(t, 1, pos.Ply())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: the initial position with X to move
		pos := InitialPosition()

		// When: player O tries to move
		_, err := pos.ApplyMove(Move{Row: 0, Col: 1, Mark: O})

		// Then: ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: the initial position
		pos := InitialPosition()

		// When: a cell outside the board is targeted
		_, err := pos.ApplyMove(Move{Row: 3, Col: 0, Mark: X})

		// Then: ErrInvalidCell must be returned
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		// Given: the initial position
		pos := InitialPosition()

		// When: a negative column is passed
		_, err := pos.ApplyMove(Move{Row: 0, Col: -1, Mark: X})

		// Then: ErrInvalidCell must be returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a position where X has completed the top row
		pos := mustParse(t, "XXX/.O./.O.")

		// When: player O tries to move anyway
		_, err := pos.ApplyMove(Move{Row: 1, Col: 0, Mark: O})

		// Then: ErrGameFinished must be returned
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestPosition_LegalMoves(t *testing.T) {
	t.Run("Initial position offers every cell to X", func(t *testing.T) {
		// When: listing moves of the empty board
		moves := InitialPosition().LegalMoves()

		// Then: all nine cells are returned in row-major order
		require.Len(t, moves, 9)
		for i, move := range moves {
			assert.Equal(t, Move{Row: i / 3, Col: i % 3, Mark: X}, move)
		}
	})

	t.Run("Only empty cells in row-major order", func(t *testing.T) {
		// Given: a position with four marks and X to move
		pos := mustParse(t, "XX./.O./O..")

		// When: listing the legal moves
		moves := pos.LegalMoves()

		// Then: exactly the empty cells are returned, tagged with X
		expected := []Move{
			{Row: 0, Col: 2, Mark: X},
			{Row: 1, Col: 0, Mark: X},
			{Row: 1, Col: 2, Mark: X},
			{Row: 2, Col: 1, Mark: X},
			{Row: 2, Col: 2, Mark: X},
		}
		assert.Equal(t, expected, moves)
		assert.Equal(t, 9, len(moves)+pos.Ply())
	})

	t.Run("Finished position has no moves", func(t *testing.T) {
		// Given: a position won by X with free cells left
		pos := mustParse(t, "XXX/OO./...")

		// Then: no moves are available
		assert.Empty(t, pos.LegalMoves())
	})

	t.Run("Drawn position has no moves", func(t *testing.T) {
		// Given: a full board without a line
		pos := mustParse(t, "XOX/XOO/OXX")

		// Then: no moves are available
		assert.Empty(t, pos.LegalMoves())
	})
}

func mustParse(t *testing.T, s string) Position {
	t.Helper()

	pos, err := ParsePosition(s)
	require.NoError(t, err)

	return pos
}
