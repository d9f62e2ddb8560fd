package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	ResultX    = "X"
	ResultO    = "O"
	ResultDraw = "draw"
)

var ErrUnknownMatchStatus = errors.New("unknown match status")

// Match is one game between two players with a clock per side. It lives in memory
// for the duration of a series.
type Match struct {
	ID       string             `json:"id"`
	PlayerX  Player             `json:"player_x"`
	PlayerO  Player             `json:"player_o"`
	Position tictactoe.Position `json:"-"`
	Moves    []tictactoe.Move   `json:"moves"`
	Status   string             `json:"status"`
	Outcome  tictactoe.Outcome  `json:"outcome"`
	TimedOut bool               `json:"timed_out"`

	TimeLeft map[tictactoe.Mark]time.Duration `json:"-"`
}

// NewMatch starts from start with budget on each clock. A finished start position
// yields a finished match.
func NewMatch(playerX, playerO Player, start tictactoe.Position, budget time.Duration) *Match {
	match := &Match{
		ID:       uuid.NewString(),
		PlayerX:  playerX,
		PlayerO:  playerO,
		Position: start,
		Status:   StatusOngoing,
		TimeLeft: map[tictactoe.Mark]time.Duration{
			tictactoe.X: budget,
			tictactoe.O: budget,
		},
	}

	if outcome := start.Outcome(); outcome.IsOver() {
		match.Outcome = outcome
		match.Status = StatusFinished
	}

	return match
}

// Player returns the seat playing mark.
func (that *Match) Player(mark tictactoe.Mark) Player {
	if mark == tictactoe.O {
		return that.PlayerO
	}
	return that.PlayerX
}

// Charge takes elapsed off mark's clock. The clock may go negative.
func (that *Match) Charge(mark tictactoe.Mark, elapsed time.Duration) {
	that.TimeLeft[mark] -= elapsed
}

func (that *Match) OutOfTime(mark tictactoe.Mark) bool {
	return that.TimeLeft[mark] < 0
}

// Play applies move and finishes the match once the position is over.
func (that *Match) Play(move tictactoe.Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	next, err := that.Position.ApplyMove(move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Position = next
	that.Moves = append(that.Moves, move)

	if outcome := next.Outcome(); outcome.IsOver() {
		that.Outcome = outcome
		that.Status = StatusFinished
	}

	return nil
}

// Forfeit ends the match as a win for loser's opponent on time.
func (that *Match) Forfeit(loser tictactoe.Mark) {
	that.Outcome = tictactoe.Outcome{Status: tictactoe.Won, Winner: loser.Opponent()}
	that.Status = StatusFinished
	that.TimedOut = true
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}

// Result is "X", "O" or "draw" once finished, empty before.
func (that *Match) Result() string {
	if !that.IsFinished() {
		return ""
	}

	switch {
	case that.Outcome.Status == tictactoe.Won && that.Outcome.Winner == tictactoe.X:
		return ResultX
	case that.Outcome.Status == tictactoe.Won && that.Outcome.Winner == tictactoe.O:
		return ResultO
	default:
		return ResultDraw
	}
}

// Tally counts results over a series of matches.
type Tally struct {
	XWins    int `json:"x"`
	OWins    int `json:"o"`
	Draws    int `json:"draw"`
	Timeouts int `json:"timeouts"`
}

// Record adds a finished match. Unfinished matches are ignored.
func (that *Tally) Record(match *Match) {
	switch match.Result() {
	case ResultX:
		that.XWins++
	case ResultO:
		that.OWins++
	case ResultDraw:
		that.Draws++
	default:
		return
	}

	if match.TimedOut {
		that.Timeouts++
	}
}

func (that Tally) Games() int {
	return that.XWins + that.OWins + that.Draws
}
