// Package game provides the turn controller for a chess game. A Game owns the
// current board and the one ordered log of accepted moves; whose turn it is
// is always derived from that log.
package game

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Status summarises the position for the side to move.
type Status int

// Game statuses.
const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Terminal returns true if no further move can be played.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// Game is a chess game in progress.
type Game struct {
	board chess.Board
	moves []chess.Move
	first chess.Colour
}

// Option configures a Game built by NewFromBoard.
type Option func(*Game)

// WithFirstMover sets the colour that moves while the log is empty.
func WithFirstMover(colour chess.Colour) Option {
	return func(g *Game) {
		g.first = colour
	}
}

// New returns a game at the standard starting position with White to move.
func New() *Game {
	return &Game{
		board: chess.NewStandardBoard(),
		first: chess.White,
	}
}

// NewFromBoard returns a game starting from board. The board must hold
// exactly one king of each colour, and the side that does not move first
// must not be in check.
func NewFromBoard(board chess.Board, opts ...Option) (*Game, error) {
	g := &Game{board: board, first: chess.White}
	for _, opt := range opts {
		opt(g)
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.CountPiece(chess.Piece{Type: chess.King, Colour: colour}); n != 1 {
			return nil, fmt.Errorf("%d %v kings: %w", n, colour, errors.ErrInvalidSetup)
		}
	}

	waiting := g.first.Opposite()
	inCheck, err := engine.IsInCheck(board, waiting)
	if err != nil {
		return nil, errors.Wrap(err, "checking setup")
	}
	if inCheck {
		return nil, fmt.Errorf("%v is in check but not to move: %w", waiting, errors.ErrInvalidSetup)
	}
	return g, nil
}

// Move plays the move from one square to another for the side to move.
// A rejected move returns a *errors.MoveError wrapping the failure kind and
// leaves the game untouched.
func (g *Game) Move(from, to chess.Position) error {
	move, next, err := engine.Play(g.board, g.PlayerColour(), from, to)
	if err != nil {
		invariant(err)
		return g.moveError(err, from, to)
	}
	g.board = next
	g.moves = append(g.moves, move)
	return nil
}

func (g *Game) moveError(err error, from, to chess.Position) error {
	me := &errors.MoveError{
		Err:  err,
		Ply:  len(g.moves) + 1,
		From: from.String(),
		To:   to.String(),
	}
	if piece, ok := g.board.PieceAt(from); ok {
		me.Piece = piece.String()
	}
	return me
}

// PlayerColour returns the colour to move.
func (g *Game) PlayerColour() chess.Colour {
	if len(g.moves)%2 == 0 {
		return g.first
	}
	return g.first.Opposite()
}

// FirstMover returns the colour that made, or will make, the first move.
func (g *Game) FirstMover() chess.Colour {
	return g.first
}

// Board returns the current board. Boards are values, so the caller cannot
// change the game through it.
func (g *Game) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece on p of the current board, if any.
func (g *Game) PieceAt(p chess.Position) (chess.Piece, bool) {
	return g.board.PieceAt(p)
}

// Check returns true if the side to move is in check.
func (g *Game) Check() bool {
	inCheck, err := engine.IsInCheck(g.board, g.PlayerColour())
	invariant(err)
	return inCheck
}

// Checkmate returns true if the side to move is in check and has no legal move.
func (g *Game) Checkmate() bool {
	mate, err := engine.IsCheckmate(g.board, g.PlayerColour())
	invariant(err)
	return mate
}

// Stalemate returns true if the side to move is not in check and has no
// legal move.
func (g *Game) Stalemate() bool {
	stale, err := engine.IsStalemate(g.board, g.PlayerColour())
	invariant(err)
	return stale
}

// Status classifies the current position.
func (g *Game) Status() Status {
	colour := g.PlayerColour()
	inCheck, err := engine.IsInCheck(g.board, colour)
	invariant(err)
	hasMoves, err := engine.HasLegalMoves(g.board, colour)
	invariant(err)

	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return Check
	case !hasMoves:
		return Stalemate
	default:
		return InProgress
	}
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	moves, err := engine.AllLegalMoves(g.board, g.PlayerColour())
	invariant(err)
	return moves
}

// Moves returns a copy of the move log.
func (g *Game) Moves() []chess.Move {
	out := make([]chess.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// PlyCount returns the number of moves played.
func (g *Game) PlyCount() int {
	return len(g.moves)
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.moves) == 0 {
		return chess.Move{}, false
	}
	return g.moves[len(g.moves)-1], true
}

// invariant panics on errors that ordinary play cannot produce. Every game
// starts with one king per colour and no move can capture a king, so a
// missing king means the board was corrupted.
func invariant(err error) {
	if err == nil || errors.IsUserError(err) {
		return
	}
	if stderrors.Is(err, errors.ErrNoKingFound) {
		panic(fmt.Sprintf("game: corrupted position: %v", err))
	}
	panic(fmt.Sprintf("game: unexpected error: %v", err))
}
