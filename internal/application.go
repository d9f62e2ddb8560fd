package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	start, err := startPosition(conf.Match.Start)
	if err != nil {
		return err
	}

	var solutionRepo repository.SolutionRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		solutionRepo = repository.NewSolutionRepository(redisStorage.Connection, conf.Redis.TTL)
		log.Info("Solution cache enabled", "addr", redisAddrString)
	}

	searcher := tictactoe.NewSearcher(tictactoe.SearchOptions{
		Pruning: conf.Search.Pruning,
		Workers: conf.Search.Workers,
	})
	solutionService := service.NewSolutionService(logger, solutionRepo, searcher)

	seed := conf.Match.Seed
	if seed == 0 {
		seed = rand.Int63() //nolint: gosec // it's ok
	}

	playerOpts := service.PlayerOptions{
		Depth:  conf.Search.MaxDepth,
		Input:  os.Stdin,
		Output: os.Stdout,
		Rand:   rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}

	playerX, err := service.NewPlayer(conf.Match.PlayerX, solutionService, playerOpts)
	if err != nil {
		return fmt.Errorf("failed to create player X: %w", err)
	}

	playerO, err := service.NewPlayer(conf.Match.PlayerO, solutionService, playerOpts)
	if err != nil {
		return fmt.Errorf("failed to create player O: %w", err)
	}

	printer := console.NewPrinter(os.Stdout, conf.Console.Color)

	var observer usecase.Observer
	if conf.Match.Verbose || isHuman(playerX) || isHuman(playerO) {
		observer = printer
	}

	matchManager := usecase.NewMatchManager(logger, observer, usecase.MatchOptions{
		Budget:        conf.Match.Budget(),
		LoseOnTimeout: conf.Match.LoseOnTimeout,
		Start:         start,
	})

	log.Info("Starting series",
		"games", conf.Match.Games,
		"player_x", playerX.Name(),
		"player_o", playerO.Name(),
		"seed", seed,
	)

	tally, err := matchManager.RunSeries(ctx, conf.Match.Games, playerX, playerO)
	printer.PrintTally(tally, playerX.Name(), playerO.Name())

	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if err != nil {
		return fmt.Errorf("series failed: %w", err)
	}

	return nil
}

func startPosition(board string) (tictactoe.Position, error) {
	if board == "" {
		return tictactoe.InitialPosition(), nil
	}

	pos, err := tictactoe.ParsePosition(board)
	if err != nil {
		return tictactoe.Position{}, fmt.Errorf("invalid start position %q: %w", board, err)
	}

	return pos, nil
}

func isHuman(player service.Player) bool {
	return player.Kind() == entity.KindHuman
}
