package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ParsePosition converts two-character algebraic notation ("e4") to a Position.
// Surrounding whitespace is ignored; anything else that is not a file letter
// a-h followed by a rank digit 1-8 is rejected with ErrInvalidPosition.
func ParsePosition(text string) (Position, error) {
	text = strings.TrimSpace(text)
	if len(text) != 2 {
		return Position{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidPosition)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidPosition)
	}
	return Position{Rank: int(rank - RankBase), File: int(file - FileBase)}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// It is intended for literals in tests and tables.
func MustParsePosition(text string) Position {
	p, err := ParsePosition(text)
	if err != nil {
		panic(err)
	}
	return p
}
