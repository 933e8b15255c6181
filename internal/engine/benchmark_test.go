package engine

import (
	"context"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial": InitialPlacement,
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3",
	"Complex": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"PawnMove", benchFENs["Initial"], "e2", "e4"},
		{"PieceMove", benchFENs["Initial"], "g1", "f3"},
		{"Capture", benchFENs["Complex"], "e5", "f7"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board, _, _ := NewBoardFromFEN(tt.fen)
			move, err := chess.NewMove(board, sq(tt.from), sq(tt.to))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.ApplyMove(move)
			}
		})
	}
}

func BenchmarkValidate(b *testing.B) {
	board, _, _ := NewBoardFromFEN(benchFENs["Midgame"])
	for i := 0; i < b.N; i++ {
		Validate(board, chess.White, sq("c4"), sq("f7"))
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR"

	b.Run("NoCheck", func(b *testing.B) {
		board, _, _ := NewBoardFromFEN(benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board, _, _ := NewBoardFromFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkAllLegalMoves(b *testing.B) {
	for _, name := range []string{"Initial", "Midgame", "Endgame", "Complex"} {
		b.Run(name, func(b *testing.B) {
			board, _, _ := NewBoardFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				AllLegalMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkPerft(b *testing.B) {
	board := chess.NewStandardBoard()
	for i := 0; i < b.N; i++ {
		Perft(context.Background(), board, chess.White, 3)
	}
}
