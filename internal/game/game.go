package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
)

// connectGame is an n-in-a-row game on a rectangular board. Black moves first.
type connectGame struct {
	variant  Variant
	board    *entity.Board
	selector *Selector
	turn     entity.Cell
	outcome  entity.Cell
}

// NewGame - creates a game in its initial state: empty board, Black to move, no outcome.
func NewGame(variant Variant, selector *Selector) *connectGame {
	return &connectGame{
		variant:  variant,
		board:    entity.NewBoard(variant.Width, variant.Height),
		selector: selector,
		turn:     entity.Black,
		outcome:  entity.Empty,
	}
}

func (that *connectGame) Play() (int, error) {
	if that.outcome != entity.Empty {
		return 0, apperror.ErrGameAlreadyOver
	}

	cell, err := that.selector.Pick(that.board.EmptyCells())
	if err != nil {
		return 0, fmt.Errorf("failed to pick move: %w", err)
	}

	if err = that.PlayAt(cell); err != nil {
		return 0, err
	}

	return cell, nil
}

// PlayAt - places the current player's piece on the given cell and passes the turn.
func (that *connectGame) PlayAt(cell int) error {
	if that.outcome != entity.Empty {
		return apperror.ErrGameAlreadyOver
	}

	if err := that.board.PlaceAt(cell, that.turn); err != nil {
		return fmt.Errorf("failed to place %s: %w", that.turn, err)
	}

	that.turn = entity.NextPlayer(that.turn)

	return nil
}

func (that *connectGame) CheckTermination() bool {
	if that.outcome != entity.Empty {
		return true
	}

	that.outcome = DetectOutcome(that.board, that.variant.ConnectLength)

	return that.outcome != entity.Empty
}

func (that *connectGame) Winner() string {
	return that.outcome.Label()
}

// Outcome - returns the memoized outcome, Empty while the game is running.
func (that *connectGame) Outcome() entity.Cell {
	return that.outcome
}

func (that *connectGame) GetCurrentPlayer() entity.Cell {
	return that.turn
}

func (that *connectGame) Dimension() int {
	return that.board.Size()
}

func (that *connectGame) Name() string {
	return that.variant.Name
}

func (that *connectGame) Variant() Variant {
	return that.variant
}

func (that *connectGame) Board() *entity.Board {
	return that.board
}
