package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrMalformedMove = errors.New("move must be written as 'r, c'")

type humanPlayer struct {
	input  *bufio.Reader
	output io.Writer
}

func NewHumanPlayer(input io.Reader, output io.Writer) Player {
	return &humanPlayer{
		input:  bufio.NewReader(input),
		output: output,
	}
}

func (that *humanPlayer) Name() string {
	return "Human Player"
}

func (that *humanPlayer) Kind() string {
	return entity.KindHuman
}

// MakeMove prompts until a legal move is typed. Reading stops with the reader's
// error, io.EOF included, or when ctx is done.
func (that *humanPlayer) MakeMove(ctx context.Context, pos tictactoe.Position, remaining time.Duration) (tictactoe.Move, error) {
	available := pos.LegalMoves()
	if len(available) == 0 {
		return tictactoe.Move{}, ErrNoAvailableMoves
	}

	fmt.Fprintf(that.output, "----- %s's turn -----\n", pos.Turn())
	fmt.Fprintf(that.output, "Remaining time: %0.2f\n", remaining.Seconds())
	fmt.Fprintf(that.output, "Available Moves are: %s\n", formatCells(available))

	for {
		if err := ctx.Err(); err != nil {
			return tictactoe.Move{}, fmt.Errorf("human move canceled: %w", err)
		}

		fmt.Fprint(that.output, "What's your move in 'r, c': ")

		line, err := that.input.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return tictactoe.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		move, parseErr := parseMove(line, pos.Turn())
		switch {
		case parseErr != nil:
			fmt.Fprintf(that.output, "%v\n", parseErr)
		case !slices.Contains(available, move):
			fmt.Fprintf(that.output, "(%d, %d) is not available\n", move.Row, move.Col)
		default:
			return move, nil
		}

		if err != nil {
			return tictactoe.Move{}, fmt.Errorf("failed to read move: %w", err)
		}
	}
}

func parseMove(line string, mark tictactoe.Mark) (tictactoe.Move, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 2 {
		return tictactoe.Move{}, ErrMalformedMove
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return tictactoe.Move{}, ErrMalformedMove
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return tictactoe.Move{}, ErrMalformedMove
	}

	return tictactoe.Move{Row: row, Col: col, Mark: mark}, nil
}

func formatCells(moves []tictactoe.Move) string {
	cells := make([]string, 0, len(moves))
	for _, move := range moves {
		cells = append(cells, fmt.Sprintf("(%d %d)", move.Row, move.Col))
	}

	return "[" + strings.Join(cells, ", ") + "]"
}
