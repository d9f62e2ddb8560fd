package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

type mockSolutionRepo struct {
	mock.Mock
}

func (that *mockSolutionRepo) Save(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int, result tictactoe.Result) error {
	args := that.Called(ctx, pos, self, depth, result)
	return args.Error(0)
}

func (that *mockSolutionRepo) Get(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int) (tictactoe.Result, error) {
	args := that.Called(ctx, pos, self, depth)
	return args.Get(0).(tictactoe.Result), args.Error(1)
}

type mockSearcher struct {
	mock.Mock
}

func (that *mockSearcher) BestMove(pos tictactoe.Position, self tictactoe.Mark, maxDepth int) (tictactoe.Result, error) {
	args := that.Called(pos, self, maxDepth)
	return args.Get(0).(tictactoe.Result), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustParse(t *testing.T, s string) tictactoe.Position {
	t.Helper()

	pos, err := tictactoe.ParsePosition(s)
	require.NoError(t, err)

	return pos
}

func TestSolutionService_BestMove(t *testing.T) {
	ctx := context.Background()
	pos := mustParse(t, "XX./.O./O..")
	winning := tictactoe.Result{Move: tictactoe.Move{Row: 0, Col: 2, Mark: tictactoe.X}, Value: tictactoe.WinScore, Nodes: 7}

	t.Run("Returns cached solution without searching", func(t *testing.T) {
		// Given: the repository holds the solution
		repo := &mockSolutionRepo{}
		search := &mockSearcher{}
		repo.On("Get", mock.Anything, pos, tictactoe.X, tictactoe.Unbounded).Return(winning, nil).Once()

		solutionService := NewSolutionService(discardLogger(), repo, search)

		// When: asking for the best move
		result, err := solutionService.BestMove(ctx, pos, tictactoe.X, tictactoe.Unbounded)

		// Then: the cached result is returned and the searcher is never called
		require.NoError(t, err)
		assert.Equal(t, winning, result)
		repo.AssertExpectations(t)
		search.AssertNotCalled(t, "BestMove", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Searches and stores on a cache miss", func(t *testing.T) {
		// Given: an empty repository
		repo := &mockSolutionRepo{}
		search := &mockSearcher{}
		repo.On("Get", mock.Anything, pos, tictactoe.X, 4).Return(tictactoe.Result{}, repository.ErrSolutionNotFound).Once()
		search.On("BestMove", pos, tictactoe.X, 4).Return(winning, nil).Once()
		repo.On("Save", mock.Anything, pos, tictactoe.X, 4, winning).Return(nil).Once()

		solutionService := NewSolutionService(discardLogger(), repo, search)

		// When: asking for the best move
		result, err := solutionService.BestMove(ctx, pos, tictactoe.X, 4)

		// Then: the searched result is returned and stored
		require.NoError(t, err)
		assert.Equal(t, winning, result)
		repo.AssertExpectations(t)
		search.AssertExpectations(t)
	})

	t.Run("Cache failures do not change the result", func(t *testing.T) {
		// Given: a repository that fails on both read and write
		repo := &mockSolutionRepo{}
		search := &mockSearcher{}
		repo.On("Get", mock.Anything, pos, tictactoe.X, 2).Return(tictactoe.Result{}, errRedisDown).Once()
		search.On("BestMove", pos, tictactoe.X, 2).Return(winning, nil).Once()
		repo.On("Save", mock.Anything, pos, tictactoe.X, 2, winning).Return(errStorageIsFull).Once()

		solutionService := NewSolutionService(discardLogger(), repo, search)

		// When: asking for the best move
		result, err := solutionService.BestMove(ctx, pos, tictactoe.X, 2)

		// Then: the searched result is still returned
		require.NoError(t, err)
		assert.Equal(t, winning, result)
		repo.AssertExpectations(t)
	})

	t.Run("Search errors are not cached", func(t *testing.T) {
		// Given: a searcher that rejects a finished position
		finished := mustParse(t, "XXX/OO./...")
		repo := &mockSolutionRepo{}
		search := &mockSearcher{}
		repo.On("Get", mock.Anything, finished, tictactoe.O, 1).Return(tictactoe.Result{}, repository.ErrSolutionNotFound).Once()
		search.On("BestMove", finished, tictactoe.O, 1).Return(tictactoe.Result{}, apperror.ErrInvalidSearchState).Once()

		solutionService := NewSolutionService(discardLogger(), repo, search)

		// When: asking for the best move
		_, err := solutionService.BestMove(ctx, finished, tictactoe.O, 1)

		// Then: the error is propagated and nothing is saved
		require.ErrorIs(t, err, apperror.ErrInvalidSearchState)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Works without a repository", func(t *testing.T) {
		// Given: caching is disabled and the real searcher is used
		solutionService := NewSolutionService(discardLogger(), nil, tictactoe.NewSearcher(tictactoe.SearchOptions{Pruning: true}))

		// When: asking for the best move
		result, err := solutionService.BestMove(ctx, pos, tictactoe.X, tictactoe.Unbounded)

		// Then: the top row is completed
		require.NoError(t, err)
		assert.Equal(t, winning.Move, result.Move)
		assert.Equal(t, tictactoe.WinScore, result.Value)
	})
}
