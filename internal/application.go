package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-sim/internal/config"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/internal/report"
	"github.com/rocketscienceinc/tictactoe-sim/internal/repository"
	"github.com/rocketscienceinc/tictactoe-sim/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-sim/internal/simulation"
)

// RunApp - runs the configured simulation and prints the tally to stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_, err := Simulate(ctx, logger, conf, os.Stdout)

	return err
}

// Simulate - plays conf.Simulation.Iterations games, writes the tally to out
// and stores the run in Redis when enabled.
func Simulate(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) (*entity.Run, error) {
	log := logger.With("component", "app")

	options := []simulation.Option{simulation.WithWorkers(conf.Simulation.Workers)}
	if conf.Simulation.Seed != 0 {
		options = append(options, simulation.WithSeed(conf.Simulation.Seed))
	}

	controller := simulation.NewController(logger, conf.Simulation.Game, options...)

	run := &entity.Run{
		ID:        uuid.NewString(),
		Game:      conf.Simulation.Game,
		Games:     conf.Simulation.Iterations,
		Workers:   controller.Workers(),
		Seed:      controller.Seed(),
		StartedAt: time.Now().UTC(),
	}

	tally, err := controller.Run(ctx, conf.Simulation.Iterations)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	run.Results = tally
	run.FinishedAt = time.Now().UTC()

	log.Info("Run completed", "run_id", run.ID, "games", tally.Total(), "elapsed", run.Elapsed())

	if err = report.NewPrinter(out).Print(tally); err != nil {
		return nil, err
	}

	if conf.Redis.Enabled {
		if err = saveRun(ctx, conf, run); err != nil {
			return nil, err
		}
		log.Info("Run stored", "run_id", run.ID)
	}

	return run, nil
}

func saveRun(ctx context.Context, conf *config.Config, run *entity.Run) error {
	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}
	defer redisStorage.Close()

	if err = repository.NewRunRepository(redisStorage).Save(ctx, run); err != nil {
		return fmt.Errorf("could not store run: %w", err)
	}

	return nil
}
