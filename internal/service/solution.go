package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type SolutionService interface {
	BestMove(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int) (tictactoe.Result, error)
}

type solutionRepo interface {
	Save(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int, result tictactoe.Result) error
	Get(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int) (tictactoe.Result, error)
}

type searcher interface {
	BestMove(pos tictactoe.Position, self tictactoe.Mark, maxDepth int) (tictactoe.Result, error)
}

type solutionService struct {
	logger *slog.Logger

	solutionRepo solutionRepo
	searcher     searcher
}

// NewSolutionService answers from solutionRepo when it holds the result and searches
// otherwise. solutionRepo may be nil to disable caching.
func NewSolutionService(logger *slog.Logger, solutionRepo solutionRepo, searcher searcher) SolutionService {
	return &solutionService{
		logger:       logger.With("component", "solution"),
		solutionRepo: solutionRepo,
		searcher:     searcher,
	}
}

// BestMove never lets a cache failure change the answer: read and write errors are
// logged and the search result is returned as is.
func (that *solutionService) BestMove(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int) (tictactoe.Result, error) {
	log := that.logger.With("method", "BestMove", "position", pos.Key(), "self", self.String(), "depth", depth)

	if that.solutionRepo != nil {
		cached, err := that.solutionRepo.Get(ctx, pos, self, depth)
		switch {
		case err == nil:
			log.Debug("solution found in cache", "move", cached.Move.String(), "value", cached.Value)
			return cached, nil
		case !errors.Is(err, repository.ErrSolutionNotFound):
			log.Warn("failed to read solution from cache", "error", err)
		}
	}

	result, err := that.searcher.BestMove(pos, self, depth)
	if err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to search position: %w", err)
	}

	log.Debug("position searched", "move", result.Move.String(), "value", result.Value, "nodes", result.Nodes)

	if that.solutionRepo != nil {
		if err = that.solutionRepo.Save(ctx, pos, self, depth, result); err != nil {
			log.Warn("failed to store solution in cache", "error", err)
		}
	}

	return result, nil
}
