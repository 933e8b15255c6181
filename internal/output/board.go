// Package output renders boards, game status and move history as text and
// JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// ANSI background colours for square shading.
const (
	ansiDarkSquare  = "\x1b[100m"
	ansiLightSquare = "\x1b[40m"
	ansiReset       = "\x1b[0m"
)

// Filled symbols are drawn for White since they read as light on a dark
// terminal.
var symbols = [2][chess.NumPieceTypes]string{
	chess.Black: {" ", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.White: {" ", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the single character drawn for piece. ASCII glyphs are
// upper case for White and lower case for Black.
func Glyph(piece chess.Piece, ascii bool) string {
	if piece.Type <= chess.NoPiece || piece.Type >= chess.NumPieceTypes {
		return " "
	}
	if ascii {
		letter := string(piece.Type.Letter())
		if piece.Colour == chess.Black {
			return strings.ToLower(letter)
		}
		return letter
	}
	return symbols[piece.Colour][piece.Type]
}

// RenderBoard writes board as an 8x8 grid, rank 8 at the top unless
// opts.Flip is set. A nil opts uses the defaults.
func RenderBoard(w io.Writer, board chess.Board, opts *config.DisplayConfig) error {
	if opts == nil {
		opts = config.NewDisplayConfig()
	}

	var sb strings.Builder
	for i := 0; i < chess.BoardSize; i++ {
		rank := chess.BoardSize - 1 - i
		if opts.Flip {
			rank = i
		}
		if opts.Coordinates {
			fmt.Fprintf(&sb, "%c ", chess.RankBase+rank)
		}
		for j := 0; j < chess.BoardSize; j++ {
			file := j
			if opts.Flip {
				file = chess.BoardSize - 1 - j
			}
			p := chess.Position{Rank: rank, File: file}
			if opts.Colour {
				sb.WriteString(squareShade(p))
			}
			glyph := " "
			if piece, ok := board.PieceAt(p); ok {
				glyph = Glyph(piece, opts.ASCII)
			}
			sb.WriteString(" " + glyph + " ")
		}
		if opts.Colour {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}

	if opts.Coordinates {
		sb.WriteString(" ")
		for j := 0; j < chess.BoardSize; j++ {
			file := j
			if opts.Flip {
				file = chess.BoardSize - 1 - j
			}
			fmt.Fprintf(&sb, "  %c", chess.FileBase+file)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func squareShade(p chess.Position) string {
	if p.IsLight() {
		return ansiLightSquare
	}
	return ansiDarkSquare
}
