package tictactoe

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Unbounded as a depth searches every branch down to a finished position.
const Unbounded = -1

type SearchOptions struct {
	// Pruning enables alpha-beta cutoffs. The chosen move and its value are the
	// same as without it.
	Pruning bool
	// Workers > 1 splits the root moves across goroutines.
	Workers int
}

// Result is the best root move and its backed-up value from the searching side's
// perspective. Nodes counts the positions visited.
type Result struct {
	Move  Move `json:"move"`
	Value int  `json:"value"`
	Nodes int  `json:"nodes"`
}

// Searcher runs plain minimax over the game tree. It holds no state between calls
// and is safe for concurrent use.
type Searcher struct {
	opts SearchOptions
}

func NewSearcher(opts SearchOptions) *Searcher {
	return &Searcher{opts: opts}
}

// BestMove searches with default options.
func BestMove(pos Position, self Mark, maxDepth int) (Result, error) {
	return NewSearcher(SearchOptions{}).BestMove(pos, self, maxDepth)
}

// BestMove returns the best move for the side to move in pos, scored from self's
// perspective: self's plies maximize, the opponent's plies minimize. maxDepth is
// the number of plies to look ahead, Unbounded for a full search. The root is
// always expanded, so a maxDepth of 0 behaves like 1. Among equally valued moves
// the first in row-major order wins.
func (that *Searcher) BestMove(pos Position, self Mark, maxDepth int) (Result, error) {
	eval, err := NewEvaluator(self)
	if err != nil {
		return Result{}, err
	}

	if outcome := pos.Outcome(); outcome.IsOver() {
		return Result{}, fmt.Errorf("%w: position is %s", apperror.ErrInvalidSearchState, outcome)
	}

	childDepth := Unbounded
	if maxDepth > 0 {
		childDepth = maxDepth - 1
	} else if maxDepth == 0 {
		childDepth = 0
	}

	moves := pos.emptyCells()
	maximizing := pos.Turn() == self

	if that.opts.Workers > 1 {
		return that.searchParallel(pos, moves, eval, childDepth, maximizing)
	}

	return that.searchSequential(pos, moves, eval, childDepth, maximizing)
}

// Value is the minimax value of pos itself. With depth 0 it is the evaluation of pos.
func (that *Searcher) Value(pos Position, self Mark, depth int) (int, error) {
	eval, err := NewEvaluator(self)
	if err != nil {
		return 0, err
	}

	nodes := 0

	return that.minimax(pos, eval, depth, math.MinInt, math.MaxInt, &nodes)
}

func (that *Searcher) searchSequential(pos Position, moves []Move, eval Evaluator, depth int, maximizing bool) (Result, error) {
	alpha, beta := math.MinInt, math.MaxInt
	best := Result{Value: initialValue(maximizing)}
	found := false

	for _, move := range moves {
		child, err := pos.ApplyMove(move)
		if err != nil {
			return Result{}, fmt.Errorf("failed to expand root: %w", err)
		}

		value, err := that.minimax(child, eval, depth, alpha, beta, &best.Nodes)
		if err != nil {
			return Result{}, err
		}

		if !found || improves(value, best.Value, maximizing) {
			best.Move, best.Value, found = move, value, true
		}

		if that.opts.Pruning {
			if maximizing {
				alpha = best.Value
			} else {
				beta = best.Value
			}
		}
	}

	best.Nodes++

	return best, nil
}

func (that *Searcher) searchParallel(pos Position, moves []Move, eval Evaluator, depth int, maximizing bool) (Result, error) {
	values := make([]int, len(moves))
	nodes := make([]int, len(moves))

	var group errgroup.Group
	group.SetLimit(that.opts.Workers)

	for i, move := range moves {
		group.Go(func() error {
			child, err := pos.ApplyMove(move)
			if err != nil {
				return fmt.Errorf("failed to expand root: %w", err)
			}

			values[i], err = that.minimax(child, eval, depth, math.MinInt, math.MaxInt, &nodes[i])

			return err
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	best := Result{Move: moves[0], Value: values[0], Nodes: 1}
	for i := range moves {
		best.Nodes += nodes[i]
		if i > 0 && improves(values[i], best.Value, maximizing) {
			best.Move, best.Value = moves[i], values[i]
		}
	}

	return best, nil
}

// minimax backs up values through the tree. Base cases in order: a finished
// position gets its exact utility, an exhausted depth gets the heuristic.
func (that *Searcher) minimax(pos Position, eval Evaluator, depth, alpha, beta int, nodes *int) (int, error) {
	*nodes++

	if pos.IsTerminal() {
		return eval.Utility(pos)
	}

	if depth == 0 {
		return eval.Heuristic(pos), nil
	}

	next := depth
	if depth > 0 {
		next = depth - 1
	}

	maximizing := pos.Turn() == eval.Self()
	best := initialValue(maximizing)

	for _, move := range pos.emptyCells() {
		child, err := pos.ApplyMove(move)
		if err != nil {
			return 0, fmt.Errorf("failed to expand position %s: %w", pos.Key(), err)
		}

		value, err := that.minimax(child, eval, next, alpha, beta, nodes)
		if err != nil {
			return 0, err
		}

		if improves(value, best, maximizing) {
			best = value
		}

		if !that.opts.Pruning {
			continue
		}

		if maximizing {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}

		if alpha >= beta {
			break
		}
	}

	return best, nil
}

func initialValue(maximizing bool) int {
	if maximizing {
		return math.MinInt
	}
	return math.MaxInt
}

func improves(value, best int, maximizing bool) bool {
	if maximizing {
		return value > best
	}
	return value < best
}

// emptyCells is LegalMoves without the terminal check, for callers that already
// know the game is on.
func (that Position) emptyCells() []Move {
	moves := make([]Move, 0, cellCount-that.ply)
	for i, cell := range that.board {
		if cell == Empty {
			moves = append(moves, Move{Row: i / Size, Col: i % Size, Mark: that.turn})
		}
	}

	return moves
}
