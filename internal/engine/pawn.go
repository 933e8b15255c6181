package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPawnMove checks the pawn's movement shape. Pawns only move towards the
// opponent: straight ahead onto an empty square, two squares from their
// starting rank, or one square diagonally onto an enemy piece.
// There is no en passant and no promotion.
func canPawnMove(board chess.Board, colour chess.Colour, from, to chess.Position) bool {
	direction := chess.ColourOffset(colour)
	rankStep := to.Rank - from.Rank
	fileDiff := abs(to.File - from.File)
	targetEmpty := board.IsEmpty(to)

	switch {
	case fileDiff == 0 && rankStep == direction:
		return targetEmpty

	case fileDiff == 0 && rankStep == 2*direction:
		return targetEmpty && from.Rank == chess.PawnStartRank(colour)

	case fileDiff == 1 && rankStep == direction:
		// Capture only; Validate has already rejected own pieces on to.
		return !targetEmpty
	}

	return false
}
