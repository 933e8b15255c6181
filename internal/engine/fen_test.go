package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantColour chess.Colour
		checkFn    func(chess.Board) bool
	}{
		{
			name:       "initial placement",
			fen:        InitialPlacement,
			wantColour: chess.White,
			checkFn: func(b chess.Board) bool {
				return b == chess.NewStandardBoard()
			},
		},
		{
			name:       "after e4 with side to move",
			fen:        "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantColour: chess.Black,
			checkFn: func(b chess.Board) bool {
				p, ok := b.PieceAt(sq("e4"))
				return ok && p == chess.W(chess.Pawn) && b.IsEmpty(sq("e2")) && b.Count() == 32
			},
		},
		{
			name:       "explicit white",
			fen:        "4k3/8/8/8/8/8/8/4K3 w",
			wantColour: chess.White,
			checkFn: func(b chess.Board) bool {
				return b.Count() == 2 &&
					b.CountPiece(chess.W(chess.King)) == 1 &&
					b.CountPiece(chess.B(chess.King)) == 1
			},
		},
		{
			name:       "empty board",
			fen:        "8/8/8/8/8/8/8/8",
			wantColour: chess.White,
			checkFn: func(b chess.Board) bool {
				return b.Count() == 0
			},
		},
		{
			name:       "ranks read top down",
			fen:        "r7/8/8/8/8/8/8/7R",
			wantColour: chess.White,
			checkFn: func(b chess.Board) bool {
				top, _ := b.PieceAt(sq("a8"))
				bottom, _ := b.PieceAt(sq("h1"))
				return top == chess.B(chess.Rook) && bottom == chess.W(chess.Rook)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, colour, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if colour != tt.wantColour {
				t.Errorf("side to move = %v, want %v", colour, tt.wantColour)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) board check failed", tt.fen)
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too few ranks", "8/8/8/8/8/8/8"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8"},
		{"short rank", "7/8/8/8/8/8/8/8"},
		{"long rank", "9/8/8/8/8/8/8/8"},
		{"digits overflow", "44p/8/8/8/8/8/8/8"},
		{"piece after full rank", "8p/8/8/8/8/8/8/8"},
		{"unknown piece", "x7/8/8/8/8/8/8/8"},
		{"bad side to move", "8/8/8/8/8/8/8/8 x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestConvertFENCharToPiece(t *testing.T) {
	tests := []struct {
		c    byte
		want chess.PieceType
	}{
		{'K', chess.King},
		{'q', chess.Queen},
		{'R', chess.Rook},
		{'b', chess.Bishop},
		{'N', chess.Knight},
		{'p', chess.Pawn},
		{'x', chess.NoPiece},
		{'1', chess.NoPiece},
	}
	for _, tt := range tests {
		if got := ConvertFENCharToPiece(tt.c); got != tt.want {
			t.Errorf("ConvertFENCharToPiece(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
