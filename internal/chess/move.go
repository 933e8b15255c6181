package chess

import "github.com/lgbarn/chessrules-go/internal/errors"

// Move represents a single move of one piece from one square to another.
type Move struct {
	// The piece being moved.
	Piece Piece

	// Source and destination squares.
	From Position
	To   Position

	// The piece standing on To before the move (Type NoPiece if none).
	Captured Piece
}

// NewMove builds the move of whatever stands on from to to, recording the
// captured piece from the destination's current occupant.
func NewMove(board Board, from, to Position) (Move, error) {
	piece, ok := board.PieceAt(from)
	if !ok {
		return Move{}, errors.Wrapf(errors.ErrNoPieceAtSource, "%v", from)
	}
	captured, _ := board.PieceAt(to)
	return Move{Piece: piece, From: from, To: to, Captured: captured}, nil
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured.Type != NoPiece
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
