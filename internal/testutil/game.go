package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// MustPosition parses an algebraic square such as "e4".
// It calls t.Fatal if the square is malformed.
func MustPosition(t *testing.T, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return p
}

// MustBoard builds a board from a FEN piece placement.
// It calls t.Fatal if the placement is malformed.
func MustBoard(t *testing.T, fen string) chess.Board {
	t.Helper()
	board, _, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// MustGame starts a game from a FEN placement, honouring its side-to-move
// field. It calls t.Fatal if the setup is rejected.
func MustGame(t *testing.T, fen string) *game.Game {
	t.Helper()
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	g, err := game.NewFromBoard(board, game.WithFirstMover(toMove))
	if err != nil {
		t.Fatalf("NewFromBoard(%q): %v", fen, err)
	}
	return g
}

// ParseMoves splits a space separated list of coordinate moves such as
// "e2e4 e7e5" into square pairs. It returns false on any malformed move.
func ParseMoves(moves string) ([][2]chess.Position, bool) {
	var out [][2]chess.Position
	for _, text := range strings.Fields(moves) {
		if len(text) != 4 {
			return nil, false
		}
		from, err := chess.ParsePosition(text[:2])
		if err != nil {
			return nil, false
		}
		to, err := chess.ParsePosition(text[2:])
		if err != nil {
			return nil, false
		}
		out = append(out, [2]chess.Position{from, to})
	}
	return out, true
}

// MustPlay plays a space separated list of coordinate moves on g.
// It calls t.Fatal on the first malformed or rejected move.
func MustPlay(t *testing.T, g *game.Game, moves string) {
	t.Helper()
	pairs, ok := ParseMoves(moves)
	if !ok {
		t.Fatalf("malformed move list %q", moves)
	}
	for _, pair := range pairs {
		if err := g.Move(pair[0], pair[1]); err != nil {
			t.Fatalf("Move(%v, %v): %v", pair[0], pair[1], err)
		}
	}
}
