package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/game"
)

// StatusLine returns the status message for the side to move, or "" while
// the game is simply in progress.
func StatusLine(g *game.Game) string {
	colour := g.PlayerColour()
	switch g.Status() {
	case game.Checkmate:
		return fmt.Sprintf("%v is checkmate.", colour)
	case game.Check:
		return fmt.Sprintf("%v is checked.", colour)
	case game.Stalemate:
		return fmt.Sprintf("%v has no legal moves.", colour)
	default:
		return ""
	}
}

// RenderStatus writes the status line of g, if any.
func RenderStatus(w io.Writer, g *game.Game) error {
	line := StatusLine(g)
	if line == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
