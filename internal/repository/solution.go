package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrSolutionNotFound = errors.New("solution not found")

// SolutionRepository caches search results. A result depends only on the position,
// the perspective and the depth, so entries never go stale.
type SolutionRepository interface {
	Save(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int, result tictactoe.Result) error
	Get(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int) (tictactoe.Result, error)
	Delete(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int) error
}

type dbSolution struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSolutionRepository stores entries with ttl, zero keeps them forever.
func NewSolutionRepository(client *redis.Client, ttl time.Duration) SolutionRepository {
	return &dbSolution{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSolution) Save(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int, result tictactoe.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal solution: %w", err)
	}

	err = that.client.Set(ctx, solutionKey(pos, self, depth), resultJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) Get(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int) (tictactoe.Result, error) {
	response, err := that.client.Get(ctx, solutionKey(pos, self, depth)).Result()

	if errors.Is(err, redis.Nil) {
		return tictactoe.Result{}, ErrSolutionNotFound
	}

	if err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to get solution: %w", err)
	}

	var result tictactoe.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return result, nil
}

func (that *dbSolution) Delete(ctx context.Context, pos tictactoe.Position, self tictactoe.Mark, depth int) error {
	deleted, err := that.client.Del(ctx, solutionKey(pos, self, depth)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	if deleted == 0 {
		return ErrSolutionNotFound
	}

	return nil
}

// solutionKey - "solution:<position>:<self>:<depth>", depth is "full" when unbounded.
func solutionKey(pos tictactoe.Position, self tictactoe.Mark, depth int) string {
	depthPart := "full"
	if depth >= 0 {
		depthPart = strconv.Itoa(depth)
	}

	return "solution:" + pos.Key() + ":" + self.String() + ":" + depthPart
}
