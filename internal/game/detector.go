package game

import "github.com/rocketscienceinc/tictactoe-sim/internal/entity"

// directions are the four line axes: diagonal up-right, diagonal down-right,
// vertical and horizontal. Each axis is walked both ways.
var directions = [4][2]int{{1, -1}, {1, 1}, {0, 1}, {1, 0}}

// DetectOutcome - decides the outcome after the most recent move only.
// It returns the owner of the last move when that move completed a line of
// connectLength pieces, Draw when the board is full, and Empty otherwise.
func DetectOutcome(board *entity.Board, connectLength int) entity.Cell {
	last, ok := board.LastMove()
	if !ok {
		return entity.Empty
	}

	player := board.At(last)
	for _, dir := range directions {
		if lineLength(board, last, dir[0], dir[1]) >= connectLength {
			return player
		}
	}

	if board.Full() {
		return entity.Draw
	}

	return entity.Empty
}

// lineLength - counts the pieces in the line through index along (dx, dy),
// the piece at index included once.
func lineLength(board *entity.Board, index, dx, dy int) int {
	player := board.At(index)
	if player == entity.Empty {
		return 0
	}

	return 1 + countDirection(board, index, player, dx, dy) + countDirection(board, index, player, -dx, -dy)
}

func countDirection(board *entity.Board, index int, player entity.Cell, dx, dy int) int {
	x, y := board.Coordinates(index)
	count := 0

	for {
		x += dx
		y += dy

		next, ok := board.Index(x, y)
		if !ok || board.At(next) != player {
			return count
		}
		count++
	}
}
