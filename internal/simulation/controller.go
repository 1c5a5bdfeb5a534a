package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/internal/game"
)

var ErrInvalidGameCount = errors.New("number of games must not be negative")

type Option func(controller *Controller)

// WithWorkers - splits the games between the given number of goroutines.
func WithWorkers(workers int) Option {
	return func(c *Controller) {
		c.workers = workers
	}
}

// WithSeed - sets the base seed, worker i draws from seed+i.
func WithSeed(seed uint64) Option {
	return func(c *Controller) {
		c.seed = seed
	}
}

// Controller plays full random games of one variant and tallies their winners.
type Controller struct {
	logger   *slog.Logger
	gameName string
	workers  int
	seed     uint64
}

func NewController(logger *slog.Logger, gameName string, options ...Option) *Controller {
	c := &Controller{
		logger:   logger.With("component", "simulation"),
		gameName: gameName,
		workers:  1,
		seed:     game.TimeSeed(),
	}

	for _, option := range options {
		option(c)
	}

	if c.workers < 1 {
		c.workers = 1
	}

	return c
}

func (that *Controller) Seed() uint64 {
	return that.seed
}

func (that *Controller) Workers() int {
	return that.workers
}

// Run - plays the given number of games and returns the winner tally.
// Cancelling ctx stops the run between two games.
func (that *Controller) Run(ctx context.Context, games int) (*entity.Tally, error) {
	if games < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGameCount, games)
	}

	if _, err := game.ParseVariant(that.gameName); err != nil {
		return nil, err
	}

	workers := min(that.workers, max(games, 1))

	that.logger.Info("Starting simulation", "game", that.gameName, "games", games, "workers", workers, "seed", that.seed)

	if workers == 1 {
		tally, err := that.playGames(ctx, 0, games)
		if err != nil {
			return nil, err
		}
		that.logger.Info("Simulation finished", "games", tally.Total())
		return tally, nil
	}

	tallies := make([]*entity.Tally, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	perWorker, rest := games/workers, games%workers
	for id := range workers {
		n := perWorker
		if id < rest {
			n++
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			tallies[id], errs[id] = that.playGames(ctx, id, n)
		}()
	}
	wg.Wait()

	total := entity.NewTally()
	for id := range workers {
		if errs[id] != nil {
			return nil, errs[id]
		}
		total.Merge(tallies[id])
	}

	that.logger.Info("Simulation finished", "games", total.Total())

	return total, nil
}

// playGames - plays n games with a generator of its own.
func (that *Controller) playGames(ctx context.Context, worker, n int) (*entity.Tally, error) {
	factory := game.NewFactory(game.NewSelector(that.seed + uint64(worker)))
	tally := entity.NewTally()

	for i := range n {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("simulation stopped after %d games: %w", i, ctx.Err())
		default:
		}

		g, err := factory.New(that.gameName)
		if err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		winner, err := PlayOut(g)
		if err != nil {
			return nil, fmt.Errorf("game %d failed: %w", i, err)
		}

		tally.Add(winner)
	}

	that.logger.Debug("Worker finished", "worker", worker, "games", n)

	return tally, nil
}

// PlayOut - plays g until it is over and returns the winner label.
func PlayOut(g game.Game) (string, error) {
	for !g.CheckTermination() {
		if _, err := g.Play(); err != nil {
			return "", fmt.Errorf("failed to play: %w", err)
		}
	}

	return g.Winner(), nil
}
