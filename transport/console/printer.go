package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	colorX = "#E06C75"
	colorO = "#61AFEF"
)

// Printer writes matches and series results to a terminal. It satisfies
// usecase.Observer.
type Printer struct {
	output *termenv.Output
}

// NewPrinter writes to w. Without color every style is dropped, otherwise the
// color profile is detected from w.
func NewPrinter(w io.Writer, color bool) *Printer {
	if !color {
		return &Printer{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}

	return &Printer{output: termenv.NewOutput(w)}
}

func (that *Printer) MatchStarted(match *entity.Match) {
	fmt.Fprintf(that.output, "%s\n", that.output.String("Match "+match.ID).Bold())
	fmt.Fprintf(that.output, "%s vs %s\n",
		that.seat(tictactoe.X, match.PlayerX.Name),
		that.seat(tictactoe.O, match.PlayerO.Name),
	)
	fmt.Fprint(that.output, that.board(match.Position))
}

func (that *Printer) MoveApplied(match *entity.Match, move tictactoe.Move, elapsed time.Duration) {
	fmt.Fprintf(that.output, "%s placing at (%d, %d) in %0.2fs\n",
		that.mark(move.Mark), move.Row, move.Col, elapsed.Seconds())
	fmt.Fprint(that.output, that.board(match.Position))
	fmt.Fprintf(that.output, "Clock: %s %0.2fs, %s %0.2fs\n",
		that.mark(tictactoe.X), match.TimeLeft[tictactoe.X].Seconds(),
		that.mark(tictactoe.O), match.TimeLeft[tictactoe.O].Seconds(),
	)
}

func (that *Printer) MatchFinished(match *entity.Match) {
	line := "Result: draw"
	if winner := match.Outcome.Winner; match.Outcome.Status == tictactoe.Won {
		line = fmt.Sprintf("Result: %s wins", that.seat(winner, match.Player(winner).Name))
	}

	if match.TimedOut {
		line += " on time"
	}

	fmt.Fprintf(that.output, "%s\n\n", line)
}

// PrintTally writes the final score of a series.
func (that *Printer) PrintTally(tally entity.Tally, playerX, playerO string) {
	fmt.Fprintf(that.output, "%s\n", that.output.String(fmt.Sprintf("==== %d GAMES ====", tally.Games())).Bold())
	fmt.Fprintf(that.output, "%s: %d\n", that.seat(tictactoe.X, playerX), tally.XWins)
	fmt.Fprintf(that.output, "%s: %d\n", that.seat(tictactoe.O, playerO), tally.OWins)
	fmt.Fprintf(that.output, "Draws: %d\n", tally.Draws)

	if tally.Timeouts > 0 {
		fmt.Fprintf(that.output, "Timeouts: %d\n", tally.Timeouts)
	}
}

func (that *Printer) board(pos tictactoe.Position) string {
	var sb strings.Builder

	sb.WriteString("    0   1   2  \n")
	sb.WriteString("  +---+---+---+\n")
	for row := range tictactoe.Size {
		fmt.Fprintf(&sb, "%d |", row)
		for col := range tictactoe.Size {
			sb.WriteString(" " + that.cell(pos.At(row, col)) + " |")
		}
		sb.WriteString("\n  +---+---+---+\n")
	}

	if !pos.IsTerminal() {
		fmt.Fprintf(&sb, "Current Player: %s\n", that.mark(pos.Turn()))
	}

	return sb.String()
}

func (that *Printer) seat(mark tictactoe.Mark, name string) string {
	return fmt.Sprintf("%s (%s)", name, that.mark(mark))
}

func (that *Printer) cell(mark tictactoe.Mark) string {
	if !mark.IsPlayer() {
		return tictactoe.CellSymbol(mark)
	}

	return that.mark(mark)
}

func (that *Printer) mark(mark tictactoe.Mark) string {
	style := that.output.String(mark.String()).Bold()

	switch mark {
	case tictactoe.X:
		style = style.Foreground(that.output.Color(colorX))
	case tictactoe.O:
		style = style.Foreground(that.output.Color(colorO))
	}

	return style.String()
}
