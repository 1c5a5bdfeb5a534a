package apperror

import "errors"

var (
	ErrInvalidMove        = errors.New("invalid move")
	ErrNoLegalMoves       = errors.New("no legal moves")
	ErrGameAlreadyOver    = errors.New("game is already over")
	ErrUnknownGameVariant = errors.New("unknown game variant")
)
