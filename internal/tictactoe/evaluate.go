package tictactoe

import (
	"errors"
	"fmt"
	"math"
)

// WinScore is the exact utility of a won position. A lost position scores -WinScore.
// Heuristic scores stay far below it: at most 8 lines of 1000.
const WinScore = math.MaxInt32

const lineFactor = 10

var ErrNotTerminal = errors.New("position is not terminal")

// Evaluator scores positions from the point of view of one side.
//
// It has two modes. Utility is exact and only defined on finished positions.
// Heuristic is the line-potential score used when the search stops at a depth
// cutoff before the game is over.
type Evaluator struct {
	self Mark
}

func NewEvaluator(self Mark) (Evaluator, error) {
	if !self.IsPlayer() {
		return Evaluator{}, fmt.Errorf("%w: evaluator perspective %s", ErrInvalidMark, self)
	}

	return Evaluator{self: self}, nil
}

func (that Evaluator) Self() Mark {
	return that.self
}

// Evaluate picks the mode: exact utility for finished positions, heuristic otherwise.
func (that Evaluator) Evaluate(pos Position) int {
	if score, err := that.Utility(pos); err == nil {
		return score
	}

	return that.Heuristic(pos)
}

// Utility is the exact value of a finished position.
func (that Evaluator) Utility(pos Position) (int, error) {
	outcome := pos.Outcome()

	switch {
	case outcome.Status == Draw:
		return 0, nil
	case outcome.Status == Won && outcome.Winner == that.self:
		return WinScore, nil
	case outcome.Status == Won:
		return -WinScore, nil
	default:
		return 0, fmt.Errorf("%w: %s to move at ply %d", ErrNotTerminal, pos.Turn(), pos.Ply())
	}
}

// Heuristic sums LineScore over the eight lines.
func (that Evaluator) Heuristic(pos Position) int {
	value := 0
	for _, line := range WinLines {
		value += that.LineScore(pos.board[line[0]], pos.board[line[1]], pos.board[line[2]])
	}

	return value
}

// LineScore is own potential minus opponent potential for one line. A side's
// potential is 10^k for k of its marks, or 0 once the other side has a mark there.
func (that Evaluator) LineScore(cells ...Mark) int {
	opponent := that.self.Opponent()

	own, opp := 1, 1
	for _, cell := range cells {
		switch cell {
		case that.self:
			own *= lineFactor
			opp = 0
		case opponent:
			opp *= lineFactor
			own = 0
		}
	}

	return own - opp
}
