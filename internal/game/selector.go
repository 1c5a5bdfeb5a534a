package game

import (
	"iter"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
)

// Selector picks moves uniformly at random. It is not safe for concurrent
// use, every simulation worker owns its own.
type Selector struct {
	rnd        *rand.Rand
	candidates []int
}

func NewSelector(seed uint64) *Selector {
	return &Selector{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// TimeSeed - returns a seed derived from the wall clock.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Pick - returns one of the candidates with uniform probability.
func (that *Selector) Pick(candidates iter.Seq[int]) (int, error) {
	that.candidates = that.candidates[:0]
	for candidate := range candidates {
		that.candidates = append(that.candidates, candidate)
	}

	if len(that.candidates) == 0 {
		return 0, apperror.ErrNoLegalMoves
	}

	return that.candidates[that.rnd.Intn(len(that.candidates))], nil
}
