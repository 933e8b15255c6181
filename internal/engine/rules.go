// Package engine provides chess move validation, check detection and legal
// move generation over immutable boards.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Validate reports why moving the piece on from to to is not geometrically
// legal for colour, or nil if it is. King safety is not considered.
//
// Checks run in a fixed order and the first failure wins: both squares on
// the board, a piece of colour on from, no own piece on to, from != to,
// the piece's movement shape, and finally line of sight for sliding moves.
func Validate(board chess.Board, colour chess.Colour, from, to chess.Position) error {
	if err := validate(board, colour, from, to); err != nil {
		return fmt.Errorf("%v%v: %w", from, to, err)
	}
	return nil
}

// validate is Validate without context on the returned sentinel, so the
// move generator can probe every square cheaply.
func validate(board chess.Board, colour chess.Colour, from, to chess.Position) error {
	if !from.Valid() || !to.Valid() {
		return errors.ErrOffBoard
	}

	piece, ok := board.PieceAt(from)
	if !ok {
		return errors.ErrNoPieceAtSource
	}
	if piece.Colour != colour {
		return errors.ErrWrongTurn
	}

	target, occupied := board.PieceAt(to)
	if occupied && target.Colour == colour {
		return errors.ErrIllegalShape
	}

	if from == to {
		return errors.ErrIllegalShape
	}

	if !canPieceMove(board, piece, from, to) {
		return errors.ErrIllegalShape
	}

	if needsLineOfSight(piece.Type, from, to) && !isPathClear(board, from, to) {
		return errors.ErrPathBlocked
	}

	return nil
}

// IsGeometricallyLegal reports whether Validate accepts the move.
func IsGeometricallyLegal(board chess.Board, colour chess.Colour, from, to chess.Position) bool {
	return validate(board, colour, from, to) == nil
}

// canPieceMove checks the movement shape of piece from one square to another.
// Occupancy of the path is not looked at here.
func canPieceMove(board chess.Board, piece chess.Piece, from, to chess.Position) bool {
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)

	switch piece.Type {
	case chess.Knight:
		return (rankDiff == 2 && fileDiff == 1) || (rankDiff == 1 && fileDiff == 2)

	case chess.Bishop:
		return isDiagonal(rankDiff, fileDiff)

	case chess.Rook:
		return isStraight(rankDiff, fileDiff)

	case chess.Queen:
		return isDiagonal(rankDiff, fileDiff) || isStraight(rankDiff, fileDiff)

	case chess.King:
		return max(rankDiff, fileDiff) <= 1

	case chess.Pawn:
		return canPawnMove(board, piece.Colour, from, to)
	}

	return false
}

// isDiagonal reports a non-null move along a diagonal.
func isDiagonal(rankDiff, fileDiff int) bool {
	return rankDiff == fileDiff && rankDiff != 0
}

// isStraight reports a non-null move along a rank or a file.
func isStraight(rankDiff, fileDiff int) bool {
	return (rankDiff == 0) != (fileDiff == 0)
}

// needsLineOfSight reports whether the squares between from and to must be empty.
// Knights leap and kings step, so only sliders and the pawn double step qualify.
func needsLineOfSight(pt chess.PieceType, from, to chess.Position) bool {
	if pt.IsSlider() {
		return true
	}
	return pt == chess.Pawn && abs(to.Rank-from.Rank) == 2
}
