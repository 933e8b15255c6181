package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is the content of one cell: either Occupied with Piece, or empty.
type Square struct {
	Piece    Piece
	Occupied bool
}

// Board is an immutable snapshot of piece placement: exactly one Square for
// each of the 64 positions. Board is a value; every method that changes
// placement returns a new Board and leaves the receiver untouched.
type Board struct {
	cells [NumSquares]Square
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// backRank is the piece order on the first and eighth ranks, a-file first.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard returns the standard chess starting position.
func NewStandardBoard() Board {
	var b Board
	for file := 0; file < BoardSize; file++ {
		b.cells[Position{Rank: 0, File: file}.index()] = Square{Piece: W(backRank[file]), Occupied: true}
		b.cells[Position{Rank: WhitePawnRank, File: file}.index()] = Square{Piece: W(Pawn), Occupied: true}
		b.cells[Position{Rank: BlackPawnRank, File: file}.index()] = Square{Piece: B(Pawn), Occupied: true}
		b.cells[Position{Rank: BoardSize - 1, File: file}.index()] = Square{Piece: B(backRank[file]), Occupied: true}
	}
	return b
}

// Square returns the content of the cell at p. Off-board positions read as empty.
func (b Board) Square(p Position) Square {
	if !p.Valid() {
		return Square{}
	}
	return b.cells[p.index()]
}

// PieceAt returns the piece at p and whether the square is occupied.
func (b Board) PieceAt(p Position) (Piece, bool) {
	sq := b.Square(p)
	return sq.Piece, sq.Occupied
}

// IsEmpty reports whether p holds no piece.
func (b Board) IsEmpty(p Position) bool {
	return !b.Square(p).Occupied
}

// With returns a copy of the board with piece placed on p.
func (b Board) With(p Position, piece Piece) (Board, error) {
	if !p.Valid() {
		return b, errors.Wrapf(errors.ErrOffBoard, "placing %v", piece)
	}
	if piece.Type <= NoPiece || piece.Type >= NumPieceTypes {
		return b, fmt.Errorf("placing piece type %d on %v: %w", piece.Type, p, errors.ErrInvalidSetup)
	}
	b.cells[p.index()] = Square{Piece: piece, Occupied: true}
	return b, nil
}

// Without returns a copy of the board with p cleared.
func (b Board) Without(p Position) Board {
	if p.Valid() {
		b.cells[p.index()] = Square{}
	}
	return b
}

// ApplyMove returns a new board with the piece on m.From relocated to m.To
// and m.From cleared. No rule is checked; only the presence of a piece on
// m.From is required.
func (b Board) ApplyMove(m Move) (Board, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return b, errors.Wrapf(errors.ErrOffBoard, "applying %v", m)
	}
	src := b.cells[m.From.index()]
	if !src.Occupied {
		return b, errors.Wrapf(errors.ErrNoPieceAtSource, "applying %v", m)
	}
	b.cells[m.To.index()] = src
	b.cells[m.From.index()] = Square{}
	return b, nil
}

// PiecesOf returns the squares holding pieces of the given colour, a1 to h8.
func (b Board) PiecesOf(colour Colour) []Position {
	var positions []Position
	for i, sq := range b.cells {
		if sq.Occupied && sq.Piece.Colour == colour {
			positions = append(positions, Position{Rank: i / BoardSize, File: i % BoardSize})
		}
	}
	return positions
}

// Count returns the number of occupied squares.
func (b Board) Count() int {
	n := 0
	for _, sq := range b.cells {
		if sq.Occupied {
			n++
		}
	}
	return n
}

// CountPiece returns how many copies of piece stand on the board.
func (b Board) CountPiece(piece Piece) int {
	n := 0
	for _, sq := range b.cells {
		if sq.Occupied && sq.Piece == piece {
			n++
		}
	}
	return n
}
