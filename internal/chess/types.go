// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSlider reports whether the piece moves along a line that must be clear.
func (p PieceType) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// Piece is a piece type together with its colour. Two pieces are equal when
// both fields are equal; a piece does not know where it stands.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// Is reports whether the piece has the given type and colour.
func (p Piece) Is(t PieceType, c Colour) bool {
	return p.Type == t && p.Colour == c
}

// IsKingOf reports whether the piece is the king of colour c.
func (p Piece) IsKingOf(c Colour) bool {
	return p.Is(King, c)
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.Type == NoPiece {
		return "None"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Constants for board dimensions and notation.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'

	// Ranks on which pawns start, counted from 0.
	WhitePawnRank = 1
	BlackPawnRank = 6
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank from which pawns of the colour may advance two squares.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return WhitePawnRank
	}
	return BlackPawnRank
}

// Position identifies a square by rank and file, both counted from 0.
// Rank 0 is White's back rank and file 0 is the a-file.
type Position struct {
	Rank int
	File int
}

// NewPosition returns the position at rank, file or ErrOffBoard.
func NewPosition(rank, file int) (Position, error) {
	p := Position{Rank: rank, File: file}
	if !p.Valid() {
		return Position{}, errors.Wrapf(errors.ErrOffBoard, "rank %d, file %d", rank, file)
	}
	return p, nil
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Rank >= 0 && p.Rank < BoardSize && p.File >= 0 && p.File < BoardSize
}

// Offset returns the position shifted by the given number of ranks and files.
// The result may be off the board.
func (p Position) Offset(dRank, dFile int) Position {
	return Position{Rank: p.Rank + dRank, File: p.File + dFile}
}

// index returns the cell index used by Board.
func (p Position) index() int {
	return p.Rank*BoardSize + p.File
}

// String returns the square in algebraic form, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return string([]byte{byte(FileBase + p.File), byte(RankBase + p.Rank)})
}

// IsLight reports whether the square is a light square.
func (p Position) IsLight() bool {
	return (p.Rank+p.File)%2 == 1
}

// AllPositions returns the 64 squares in rank-major order from a1 to h8.
func AllPositions() []Position {
	positions := make([]Position, 0, NumSquares)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			positions = append(positions, Position{Rank: rank, File: file})
		}
	}
	return positions
}
