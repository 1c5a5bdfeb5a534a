package simulation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/internal/game"
	"github.com/rocketscienceinc/tictactoe-sim/testing/suite"
)

func TestController_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Every game is counted once", func(t *testing.T) {
		// Given: a sequential controller
		controller := NewController(suite.NewLogger(t), "Tictactoe", WithSeed(1))

		// When: many games are simulated
		const games = 100000
		tally, err := controller.Run(ctx, games)

		// Then: the counts add up to the number of games
		require.NoError(t, err)
		require.Equal(t, games, tally.Total())

		// Then: only terminal labels appear and random play produces all of them
		assert.ElementsMatch(t, []string{entity.LabelBlack, entity.LabelWhite, entity.LabelDraw}, tally.Labels())
		assert.Greater(t, tally.Count(entity.LabelBlack), tally.Count(entity.LabelWhite))
	})

	t.Run("Workers split the games", func(t *testing.T) {
		controller := NewController(suite.NewLogger(t), "gomoku", WithSeed(5), WithWorkers(3))

		tally, err := controller.Run(ctx, 301)

		require.NoError(t, err)
		require.Equal(t, 301, tally.Total())
		require.Zero(t, tally.Count(entity.LabelUnknown))
	})

	t.Run("More workers than games", func(t *testing.T) {
		controller := NewController(suite.NewLogger(t), "tictactoe", WithSeed(5), WithWorkers(8))

		tally, err := controller.Run(ctx, 3)

		require.NoError(t, err)
		require.Equal(t, 3, tally.Total())
	})

	t.Run("Same seed same tally", func(t *testing.T) {
		run := func() []entity.TallyEntry {
			controller := NewController(suite.NewLogger(t), "tictactoe", WithSeed(42), WithWorkers(4))
			tally, err := controller.Run(ctx, 2000)
			require.NoError(t, err)
			return tally.Entries()
		}

		require.Equal(t, run(), run())
	})

	t.Run("Zero games", func(t *testing.T) {
		tally, err := NewController(suite.NewLogger(t), "tictactoe").Run(ctx, 0)

		require.NoError(t, err)
		require.Zero(t, tally.Total())
		require.Empty(t, tally.Labels())
	})

	t.Run("Negative games", func(t *testing.T) {
		_, err := NewController(suite.NewLogger(t), "tictactoe").Run(ctx, -1)

		require.ErrorIs(t, err, ErrInvalidGameCount)
	})

	t.Run("Unknown game variant", func(t *testing.T) {
		// When: the controller is configured with a game that does not exist
		tally, err := NewController(suite.NewLogger(t), "checkers", WithWorkers(2)).Run(ctx, 10)

		// Then: the run does not start
		require.ErrorIs(t, err, apperror.ErrUnknownGameVariant)
		require.Nil(t, tally)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewController(suite.NewLogger(t), "tictactoe").Run(cancelled, 10)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewController_Defaults(t *testing.T) {
	controller := NewController(suite.NewLogger(t), "tictactoe", WithWorkers(0), WithSeed(9))

	require.Equal(t, 1, controller.Workers())
	require.Equal(t, uint64(9), controller.Seed())
}

func TestPlayOut(t *testing.T) {
	// Given: a game with most of the top row already taken by Black
	g := game.NewGame(game.Tictactoe, game.NewSelector(1))
	for _, cell := range []int{0, 3, 1, 4, 2} {
		require.NoError(t, g.PlayAt(cell))
	}

	// When: the game is played out
	winner, err := PlayOut(g)

	// Then: no further moves are made
	require.NoError(t, err)
	require.Equal(t, entity.LabelBlack, winner)
	require.Len(t, g.Board().History(), 5)
}
