package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DefaultLineLength is the wrap width of move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, separated from the previous one by a space or, if
// the line would grow too long, a newline.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written to it.
func (o *OutputWriter) NewLine() {
	if o.lineLength > 0 {
		o.print("\n")
	}
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WriteHistory writes moves in numbered coordinate form, e.g.
// "1. e2e4 e7e5 2. g1f3". A game Black started opens with "1... ".
func WriteHistory(w io.Writer, moves []chess.Move, first chess.Colour, maxLineLength int) error {
	ow := NewOutputWriter(w, maxLineLength)
	colour := first
	number := 1
	for i, move := range moves {
		switch {
		case colour == chess.White:
			ow.Write(strconv.Itoa(number) + ".")
		case i == 0:
			ow.Write(strconv.Itoa(number) + "...")
		}
		ow.Write(move.String())
		if colour == chess.Black {
			number++
		}
		colour = colour.Opposite()
	}
	ow.NewLine()
	if err := ow.Err(); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
