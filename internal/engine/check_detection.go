package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked. It returns
// ErrNoKingFound if colour has no king on the board.
func IsInCheck(board chess.Board, colour chess.Colour) (bool, error) {
	king, err := FindKing(board, colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, king, colour.Opposite()), nil
}

// FindKing finds the king of the given colour on the board.
func FindKing(board chess.Board, colour chess.Colour) (chess.Position, error) {
	for _, p := range squares {
		if piece, ok := board.PieceAt(p); ok && piece.IsKingOf(colour) {
			return p, nil
		}
	}
	return chess.Position{}, fmt.Errorf("%v: %w", colour, errors.ErrNoKingFound)
}

// IsSquareAttacked returns true if any piece of byColour has a geometrically
// legal move onto target as the board stands. Pawns only attack diagonally,
// so an empty target is never attacked by a pawn.
func IsSquareAttacked(board chess.Board, target chess.Position, byColour chess.Colour) bool {
	for _, from := range board.PiecesOf(byColour) {
		if IsGeometricallyLegal(board, byColour, from, target) {
			return true
		}
	}
	return false
}

// Attackers returns the squares of byColour pieces that attack target.
func Attackers(board chess.Board, target chess.Position, byColour chess.Colour) []chess.Position {
	var attackers []chess.Position
	for _, from := range board.PiecesOf(byColour) {
		if IsGeometricallyLegal(board, byColour, from, target) {
			attackers = append(attackers, from)
		}
	}
	return attackers
}
