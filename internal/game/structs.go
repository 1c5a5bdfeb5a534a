package game

import "github.com/rocketscienceinc/tictactoe-sim/internal/entity"

// Game is a two-player board game played with random moves.
type Game interface {
	// Play makes one random legal move for the current player and returns its index.
	Play() (int, error)
	// CheckTermination reports whether the game is over, remembering the outcome once found.
	CheckTermination() bool
	// Winner returns BLACK, WHITE or DRAW for a finished game, UNKNOWN otherwise.
	Winner() string
	GetCurrentPlayer() entity.Cell
	// Dimension returns the number of cells on the board.
	Dimension() int
	Name() string
}

// Variant describes the rules of a game: board dimensions and the number of
// pieces in a row needed to win.
type Variant struct {
	Name          string
	Width         int
	Height        int
	ConnectLength int
}

func (that Variant) Dimension() int {
	return that.Width * that.Height
}

var (
	Tictactoe = Variant{Name: "tictactoe", Width: 3, Height: 3, ConnectLength: 3}
	Gomoku    = Variant{Name: "gomoku", Width: 9, Height: 9, ConnectLength: 5}
)
