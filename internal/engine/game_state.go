package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsInCheck(board, colour)
	if err != nil || !inCheck {
		return false, err
	}
	hasMoves, err := HasLegalMoves(board, colour)
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsInCheck(board, colour)
	if err != nil || inCheck {
		return false, err
	}
	hasMoves, err := HasLegalMoves(board, colour)
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}
