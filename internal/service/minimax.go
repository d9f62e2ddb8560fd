package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type minimaxPlayer struct {
	solutionService SolutionService
	depth           int
}

func NewMinimaxPlayer(solutionService SolutionService, depth int) Player {
	return &minimaxPlayer{
		solutionService: solutionService,
		depth:           depth,
	}
}

func (that *minimaxPlayer) Name() string {
	return "MiniMax"
}

func (that *minimaxPlayer) Kind() string {
	return entity.KindMinimax
}

// MakeMove searches from the point of view of the side to move. The clock is not
// consulted: a search is never interrupted once started.
func (that *minimaxPlayer) MakeMove(ctx context.Context, pos tictactoe.Position, _ time.Duration) (tictactoe.Move, error) {
	result, err := that.solutionService.BestMove(ctx, pos, pos.Turn(), that.depth)
	if err != nil {
		return tictactoe.Move{}, fmt.Errorf("minimax failed to choose a move: %w", err)
	}

	return result.Move, nil
}
