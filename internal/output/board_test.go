package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var emptyRank = strings.Repeat("   ", chess.BoardSize)

func TestRenderBoard_ASCII(t *testing.T) {
	var buf bytes.Buffer
	opts := &config.DisplayConfig{ASCII: true, Coordinates: true}
	testutil.AssertNoError(t, RenderBoard(&buf, chess.NewStandardBoard(), opts))

	want := strings.Join([]string{
		"8  r  n  b  q  k  b  n  r ",
		"7  p  p  p  p  p  p  p  p ",
		"6 " + emptyRank,
		"5 " + emptyRank,
		"4 " + emptyRank,
		"3 " + emptyRank,
		"2  P  P  P  P  P  P  P  P ",
		"1  R  N  B  Q  K  B  N  R ",
		"   a  b  c  d  e  f  g  h",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderBoard_Flip(t *testing.T) {
	var buf bytes.Buffer
	board := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/R3K3")
	opts := &config.DisplayConfig{ASCII: true, Flip: true, Coordinates: true}
	testutil.AssertNoError(t, RenderBoard(&buf, board, opts))

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[0], "1 "+strings.Repeat("   ", 3)+" K "+strings.Repeat("   ", 3)+" R ")
	testutil.AssertEqual(t, lines[7], "8 "+strings.Repeat("   ", 3)+" k "+strings.Repeat("   ", 4))
	testutil.AssertEqual(t, lines[8], "   h  g  f  e  d  c  b  a")
}

func TestRenderBoard_Unicode(t *testing.T) {
	var buf bytes.Buffer
	board := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/4K3")
	testutil.AssertNoError(t, RenderBoard(&buf, board, nil))

	out := buf.String()
	testutil.AssertContains(t, out, "♔", "black king")
	testutil.AssertContains(t, out, "♚", "white king")
	testutil.AssertNotContains(t, out, "\x1b[", "no shading by default")
}

func TestRenderBoard_Colour(t *testing.T) {
	var buf bytes.Buffer
	opts := &config.DisplayConfig{Colour: true}
	testutil.AssertNoError(t, RenderBoard(&buf, chess.NewBoard(), opts))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), chess.BoardSize, "no coordinate footer")

	// a8 is light, a1 dark.
	testutil.AssertTrue(t, strings.HasPrefix(lines[0], ansiLightSquare), "a8 shading: %q", lines[0])
	testutil.AssertTrue(t, strings.HasPrefix(lines[7], ansiDarkSquare), "a1 shading: %q", lines[7])
	for _, line := range lines {
		testutil.AssertTrue(t, strings.HasSuffix(line, ansiReset), "line not reset: %q", line)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		piece chess.Piece
		ascii bool
		want  string
	}{
		{chess.W(chess.Knight), true, "N"},
		{chess.B(chess.Knight), true, "n"},
		{chess.W(chess.Queen), false, "♛"},
		{chess.B(chess.Queen), false, "♕"},
		{chess.B(chess.Pawn), false, "♙"},
		{chess.Piece{}, true, " "},
		{chess.Piece{Type: chess.NumPieceTypes}, false, " "},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, Glyph(tt.piece, tt.ascii), tt.want, "Glyph(%v, %v)", tt.piece, tt.ascii)
	}
}
