package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
)

var ErrRunNotFound = errors.New("run not found")

type RunRepository interface {
	Save(ctx context.Context, run *entity.Run) error
	GetByID(ctx context.Context, id string) (*entity.Run, error)
	ListIDsByGame(ctx context.Context, game string, limit int64) ([]string, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbRun struct {
	client *redis.Client
}

func NewRunRepository(client *redis.Client) RunRepository {
	return &dbRun{
		client: client,
	}
}

func runKey(id string) string {
	return "run:" + id
}

func gameRunsKey(game string) string {
	return "runs:" + game
}

// Save - stores the run and puts its id at the head of the game's run list.
func (that *dbRun) Save(ctx context.Context, run *entity.Run) error {
	runJSON, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("could not marshal run: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, runKey(run.ID), runJSON, 0)
		pipe.LPush(ctx, gameRunsKey(run.Game), run.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

func (that *dbRun) GetByID(ctx context.Context, id string) (*entity.Run, error) {
	response, err := that.client.Get(ctx, runKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Run{}, ErrRunNotFound
	}

	if err != nil {
		return &entity.Run{}, fmt.Errorf("%w by id", err)
	}

	var run entity.Run
	if err = json.Unmarshal([]byte(response), &run); err != nil {
		return &entity.Run{}, fmt.Errorf("failed to unmarshal run: %w", err)
	}

	return &run, nil
}

// ListIDsByGame - returns up to limit run ids of the game, newest first.
func (that *dbRun) ListIDsByGame(ctx context.Context, game string, limit int64) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	ids, err := that.client.LRange(ctx, gameRunsKey(game), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return ids, nil
}

func (that *dbRun) DeleteByID(ctx context.Context, id string) error {
	run, err := that.GetByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, runKey(id))
		pipe.LRem(ctx, gameRunsKey(run.Game), 0, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete run by ID: %w", err)
	}

	return nil
}
