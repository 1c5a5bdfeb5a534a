package entity

import "fmt"

// Cell is the content of a board square. Draw is never placed on a board,
// it only marks the outcome of a finished game.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
	Draw
)

const (
	LabelBlack   = "BLACK"
	LabelWhite   = "WHITE"
	LabelDraw    = "DRAW"
	LabelUnknown = "UNKNOWN"
)

// Label - returns the stable winner label of the cell value.
func (that Cell) Label() string {
	switch that {
	case Black:
		return LabelBlack
	case White:
		return LabelWhite
	case Draw:
		return LabelDraw
	default:
		return LabelUnknown
	}
}

func (that Cell) String() string {
	return that.Label()
}

// IsPlayer - reports whether the cell holds one of the two competing players.
func (that Cell) IsPlayer() bool {
	return that == Black || that == White
}

// NextPlayer - returns the opponent of the given player.
// Anything other than Black or White breaks the alternation invariant and panics.
func NextPlayer(player Cell) Cell {
	switch player {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("next player requested for non-player cell %d", player))
	}
}
