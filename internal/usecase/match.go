package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// Observer is told about every step of a match.
type Observer interface {
	MatchStarted(match *entity.Match)
	MoveApplied(match *entity.Match, move tictactoe.Move, elapsed time.Duration)
	MatchFinished(match *entity.Match)
}

type MatchOptions struct {
	// Budget is the thinking time of each side for a whole match.
	Budget time.Duration

	// LoseOnTimeout ends the match when a side overspends its budget.
	LoseOnTimeout bool

	// Start is the first position of every match, the empty board when zero.
	Start tictactoe.Position
}

type MatchManager struct {
	logger   *slog.Logger
	observer Observer
	opts     MatchOptions

	now func() time.Time
}

// NewMatchManager builds a manager. observer may be nil.
func NewMatchManager(logger *slog.Logger, observer Observer, opts MatchOptions) *MatchManager {
	if observer == nil {
		observer = nopObserver{}
	}

	if opts.Start == (tictactoe.Position{}) {
		opts.Start = tictactoe.InitialPosition()
	}

	return &MatchManager{
		logger:   logger,
		observer: observer,
		opts:     opts,

		now: time.Now,
	}
}

// Play runs one match to the end. The returned match is non-nil even on error and
// reflects every move applied so far.
func (that *MatchManager) Play(ctx context.Context, x, o service.Player) (*entity.Match, error) {
	match := entity.NewMatch(
		entity.Player{Name: x.Name(), Kind: x.Kind()},
		entity.Player{Name: o.Name(), Kind: o.Kind()},
		that.opts.Start,
		that.opts.Budget,
	)

	log := that.logger.With("method", "Play", "match_id", match.ID)
	log.Debug("match started", "x", x.Name(), "o", o.Name())

	that.observer.MatchStarted(match)

	for match.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return match, fmt.Errorf("match interrupted: %w", err)
		}

		mark := match.Position.Turn()
		current := x
		if mark == tictactoe.O {
			current = o
		}

		started := that.now()
		move, err := current.MakeMove(ctx, match.Position, match.TimeLeft[mark])
		elapsed := that.now().Sub(started)
		match.Charge(mark, elapsed)

		if err != nil {
			return match, fmt.Errorf("%s failed to make a move: %w", current.Name(), err)
		}

		if that.opts.LoseOnTimeout && match.OutOfTime(mark) {
			log.Info("player ran out of time", "player", current.Name(), "mark", mark.String())
			match.Forfeit(mark)

			break
		}

		if err = match.Play(move); err != nil {
			return match, fmt.Errorf("%s made an illegal move: %w", current.Name(), err)
		}

		log.Debug("move applied", "move", move.String(), "elapsed", elapsed)
		that.observer.MoveApplied(match, move, elapsed)
	}

	log.Debug("match finished", "result", match.Result(), "timed_out", match.TimedOut)
	that.observer.MatchFinished(match)

	return match, nil
}

// RunSeries plays games matches with the same seats and tallies the results. On
// error the tally holds every match finished before it.
func (that *MatchManager) RunSeries(ctx context.Context, games int, x, o service.Player) (entity.Tally, error) {
	log := that.logger.With("method", "RunSeries")

	var tally entity.Tally

	for game := range games {
		if err := ctx.Err(); err != nil {
			return tally, fmt.Errorf("series interrupted after %d games: %w", game, err)
		}

		match, err := that.Play(ctx, x, o)
		if err != nil {
			return tally, fmt.Errorf("game %d: %w", game+1, err)
		}

		tally.Record(match)
	}

	log.Info("series finished",
		"games", tally.Games(),
		"x_wins", tally.XWins,
		"o_wins", tally.OWins,
		"draws", tally.Draws,
		"timeouts", tally.Timeouts,
	)

	return tally, nil
}

type nopObserver struct{}

func (nopObserver) MatchStarted(*entity.Match) {}
func (nopObserver) MoveApplied(*entity.Match, tictactoe.Move, time.Duration) {}
func (nopObserver) MatchFinished(*entity.Match) {}
