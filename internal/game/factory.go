package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
)

var variants = map[string]Variant{
	Tictactoe.Name: Tictactoe,
	Gomoku.Name:    Gomoku,
}

// ParseVariant - looks a variant up by its case-insensitive name.
func ParseVariant(name string) (Variant, error) {
	variant, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", apperror.ErrUnknownGameVariant, name)
	}
	return variant, nil
}

// Variants - returns the names of all known variants, sorted.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Factory builds fresh games that all draw moves from the same selector.
type Factory struct {
	selector *Selector
}

func NewFactory(selector *Selector) *Factory {
	return &Factory{selector: selector}
}

// New - returns a game in its initial state for the named variant.
func (that *Factory) New(name string) (Game, error) {
	variant, err := ParseVariant(name)
	if err != nil {
		return nil, err
	}

	return NewGame(variant, that.selector), nil
}
