package service

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// Player proposes a move for the side to move in pos. remaining is what is left on
// the player's clock; it may be negative when timeouts are not enforced.
type Player interface {
	MakeMove(ctx context.Context, pos tictactoe.Position, remaining time.Duration) (tictactoe.Move, error)
	Name() string
	Kind() string
}

type PlayerOptions struct {
	// Depth limits the minimax player, tictactoe.Unbounded searches to the end.
	Depth int

	// Input and Output are the human player's terminal.
	Input  io.Reader
	Output io.Writer

	// Rand drives the random player, nil uses the global source.
	Rand *rand.Rand
}

// ParseKind maps a configured player kind to one of the entity kinds. The single
// letters m, r and h are accepted as shorthands.
func ParseKind(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case entity.KindMinimax, "m":
		return entity.KindMinimax, nil
	case entity.KindRandom, "r":
		return entity.KindRandom, nil
	case entity.KindHuman, "h":
		return entity.KindHuman, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
	}
}

func NewPlayer(kind string, solutionService SolutionService, opts PlayerOptions) (Player, error) {
	parsed, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}

	switch parsed {
	case entity.KindMinimax:
		return NewMinimaxPlayer(solutionService, opts.Depth), nil
	case entity.KindHuman:
		return NewHumanPlayer(opts.Input, opts.Output), nil
	default:
		return NewRandomPlayer(opts.Rand), nil
	}
}
