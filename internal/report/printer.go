package report

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
)

// Printer writes a winner tally to a terminal, one "LABEL: count" line per label.
type Printer struct {
	output *termenv.Output
}

// NewPrinter - detects the color support of w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{output: termenv.NewOutput(w)}
}

// NewPlainPrinter - never emits escape sequences.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

func (that *Printer) labelColor(label string) termenv.Color {
	switch label {
	case entity.LabelBlack:
		return that.output.Color("4")
	case entity.LabelWhite:
		return that.output.Color("3")
	case entity.LabelDraw:
		return that.output.Color("8")
	default:
		return that.output.Color("1")
	}
}

// Print - writes the tally in the order the labels were first seen.
func (that *Printer) Print(tally *entity.Tally) error {
	for _, entry := range tally.Entries() {
		label := that.output.String(entry.Label).Bold().Foreground(that.labelColor(entry.Label))
		if _, err := fmt.Fprintf(that.output, "%s: %d\n", label, entry.Count); err != nil {
			return fmt.Errorf("failed to print tally: %w", err)
		}
	}

	return nil
}
