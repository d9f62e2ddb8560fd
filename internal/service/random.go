package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type randomPlayer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomPlayer(rnd *rand.Rand) Player {
	return &randomPlayer{rnd: rnd}
}

func (that *randomPlayer) Name() string {
	return "Random Player"
}

func (that *randomPlayer) Kind() string {
	return entity.KindRandom
}

// MakeMove picks uniformly among the legal moves.
func (that *randomPlayer) MakeMove(_ context.Context, pos tictactoe.Position, _ time.Duration) (tictactoe.Move, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return tictactoe.Move{}, ErrNoAvailableMoves
	}

	return moves[that.intn(len(moves))], nil
}

func (that *randomPlayer) intn(n int) int {
	if that.rnd == nil {
		return rand.Intn(n) //nolint: gosec // it's ok
	}

	// *rand.Rand is not safe for concurrent use
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}
