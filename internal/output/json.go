package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Session    string     `json:"session,omitempty"`
	FirstMover string     `json:"firstMover"`
	ToMove     string     `json:"toMove"`
	Status     string     `json:"status"`
	PlyCount   int        `json:"plyCount"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game, session string) *JSONGame {
	jg := &JSONGame{
		Session:    session,
		FirstMover: colourName(g.FirstMover()),
		ToMove:     colourName(g.PlayerColour()),
		Status:     g.Status().String(),
		PlyCount:   g.PlyCount(),
	}

	colour := g.FirstMover()
	number := 1
	for _, m := range g.Moves() {
		jm := JSONMove{
			MoveNumber: number,
			Color:      colourName(colour),
			UCI:        m.String(),
			From:       m.From.String(),
			To:         m.To.String(),
			Piece:      strings.ToLower(m.Piece.Type.String()),
		}
		if m.IsCapture() {
			jm.Captured = strings.ToLower(m.Captured.Type.String())
		}
		jg.Moves = append(jg.Moves, jm)
		if colour == chess.Black {
			number++
		}
		colour = colour.Opposite()
	}
	return jg
}

// OutputGameJSON writes g as indented JSON.
func OutputGameJSON(w io.Writer, g *game.Game, session string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g, session))
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
