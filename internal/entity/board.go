package entity

import (
	"fmt"
	"iter"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
)

// Board is a fixed-size grid stored row by row, together with the ordered
// list of indices that were filled. Cells are only ever filled, never cleared.
type Board struct {
	width   int
	height  int
	cells   []Cell
	history []int
}

func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", width, height))
	}

	size := width * height

	return &Board{
		width:   width,
		height:  height,
		cells:   make([]Cell, size),
		history: make([]int, 0, size),
	}
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

// Size - returns the total number of cells.
func (that *Board) Size() int {
	return len(that.cells)
}

// At - returns the cell at index, Empty when index is out of range.
func (that *Board) At(index int) Cell {
	if !that.InRange(index) {
		return Empty
	}
	return that.cells[index]
}

func (that *Board) InRange(index int) bool {
	return index >= 0 && index < len(that.cells)
}

// PlaceAt - puts the player's piece on an empty cell and records the move.
func (that *Board) PlaceAt(index int, player Cell) error {
	if !that.InRange(index) {
		return fmt.Errorf("%w: cell %d out of range", apperror.ErrInvalidMove, index)
	}

	if !player.IsPlayer() {
		return fmt.Errorf("%w: cell value %d is not a player", apperror.ErrInvalidMove, player)
	}

	if that.cells[index] != Empty {
		return fmt.Errorf("%w: cell %d is occupied by %s", apperror.ErrInvalidMove, index, that.cells[index])
	}

	that.cells[index] = player
	that.history = append(that.history, index)

	return nil
}

// EmptyCells - yields the indices of the empty cells in ascending order.
// The sequence may be ranged over any number of times.
func (that *Board) EmptyCells() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, cell := range that.cells {
			if cell != Empty {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// History - returns a copy of the move history.
func (that *Board) History() []int {
	moves := make([]int, len(that.history))
	copy(moves, that.history)
	return moves
}

// Moves - returns the number of moves made so far.
func (that *Board) Moves() int {
	return len(that.history)
}

// LastMove - returns the most recently filled index.
func (that *Board) LastMove() (int, bool) {
	if len(that.history) == 0 {
		return 0, false
	}
	return that.history[len(that.history)-1], true
}

func (that *Board) Full() bool {
	return len(that.history) == len(that.cells)
}

// Coordinates - converts an index into a column and a row.
func (that *Board) Coordinates(index int) (int, int) {
	return index % that.width, index / that.width
}

// Index - converts a column and a row into an index, false when off the board.
func (that *Board) Index(x, y int) (int, bool) {
	if x < 0 || x >= that.width || y < 0 || y >= that.height {
		return 0, false
	}
	return y*that.width + x, true
}
