package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(id, game string) *entity.Run {
	results := entity.NewTally()
	results.AddN(entity.LabelBlack, 6)
	results.AddN(entity.LabelDraw, 1)
	results.AddN(entity.LabelWhite, 3)

	started := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Run{
		ID:         id,
		Game:       game,
		Games:      10,
		Workers:    1,
		Seed:       7,
		Results:    results,
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
}

func TestRunRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	runRepo := NewRunRepository(st.Storage)

	// When: Save is called with a finished run
	err := runRepo.Save(ctx, newRun("123", "tictactoe"))

	// Then: no error should be returned, and run is stored
	require.NoError(t, err)
}

func TestRunRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		runRepo := NewRunRepository(st.Storage)

		// Given: a stored run
		run := newRun("123", "tictactoe")
		require.NoError(t, runRepo.Save(ctx, run))

		// When: GetByID is called with existing ID
		retrieved, err := runRepo.GetByID(ctx, run.ID)

		// Then: the retrieved run should match the saved run, label order included
		require.NoError(t, err)
		assert.Equal(t, run.ID, retrieved.ID)
		assert.Equal(t, run.Games, retrieved.Games)
		assert.Equal(t, run.Results.Entries(), retrieved.Results.Entries())
		assert.Equal(t, time.Second, retrieved.Elapsed())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		runRepo := NewRunRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrieved, err := runRepo.GetByID(ctx, "9999999")

		// Then: an ErrRunNotFound error should be returned
		require.ErrorIs(t, err, ErrRunNotFound)
		assert.Empty(t, retrieved.ID)
	})
}

func TestRunRepository_ListIDsByGame(t *testing.T) {
	ctx, st := suite.New(t)

	runRepo := NewRunRepository(st.Storage)

	// Given: runs of two different games
	require.NoError(t, runRepo.Save(ctx, newRun("1", "tictactoe")))
	require.NoError(t, runRepo.Save(ctx, newRun("2", "gomoku")))
	require.NoError(t, runRepo.Save(ctx, newRun("3", "tictactoe")))

	// When: the tictactoe runs are listed
	ids, err := runRepo.ListIDsByGame(ctx, "tictactoe", 10)

	// Then: only tictactoe runs are returned, newest first
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids)

	// Then: the limit is honored
	ids, err = runRepo.ListIDsByGame(ctx, "tictactoe", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids)
}

func TestRunRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		runRepo := NewRunRepository(st.Storage)

		// Given: a stored run
		run := newRun("123", "gomoku")
		require.NoError(t, runRepo.Save(ctx, run))

		// When: DeleteByID is called with existing ID
		err := runRepo.DeleteByID(ctx, run.ID)

		// Then: the run and its list entry are gone
		require.NoError(t, err)

		_, err = runRepo.GetByID(ctx, run.ID)
		require.ErrorIs(t, err, ErrRunNotFound)

		ids, err := runRepo.ListIDsByGame(ctx, "gomoku", 10)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		runRepo := NewRunRepository(st.Storage)

		// When: DeleteByID is called with non-existent ID
		err := runRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrRunNotFound error should be returned
		require.ErrorIs(t, err, ErrRunNotFound)
	})
}
