// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the failure kinds a move request can produce and a structured error
// type that preserves move context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move rejection.
// Use these with errors.Is() to branch on the cause of a failure.
var (
	// ErrOffBoard indicates a square outside the 8x8 board.
	ErrOffBoard = errors.New("square is off the board")

	// ErrNoPieceAtSource indicates the source square is empty.
	ErrNoPieceAtSource = errors.New("no piece to move in this cell")

	// ErrWrongTurn indicates the piece on the source square belongs to the other player.
	ErrWrongTurn = errors.New("piece belongs to the other player")

	// ErrIllegalShape indicates the piece cannot move that way, or the
	// destination holds a piece of the same colour.
	ErrIllegalShape = errors.New("illegal move")

	// ErrPathBlocked indicates a square between source and destination is occupied.
	ErrPathBlocked = errors.New("path is blocked")

	// ErrSelfCheck indicates the move would leave the mover's own king in check.
	ErrSelfCheck = errors.New("not allowed move, since would result in check")
)

// Sentinel errors for contract violations and input parsing.
var (
	// ErrNoKingFound indicates a colour has no king on the board. It signals a
	// corrupted position and is never the result of ordinary play.
	ErrNoKingFound = errors.New("no king found")

	// ErrInvalidPosition indicates malformed algebraic square notation.
	ErrInvalidPosition = errors.New("invalid position format")

	// ErrInvalidFEN indicates a malformed FEN piece placement.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSetup indicates a board that cannot start a game.
	ErrInvalidSetup = errors.New("invalid setup")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsUserError reports whether err is a move rejection the caller can recover
// from by trying a different move.
func IsUserError(err error) bool {
	switch {
	case errors.Is(err, ErrOffBoard),
		errors.Is(err, ErrNoPieceAtSource),
		errors.Is(err, ErrWrongTurn),
		errors.Is(err, ErrIllegalShape),
		errors.Is(err, ErrPathBlocked),
		errors.Is(err, ErrSelfCheck):
		return true
	default:
		return false
	}
}

// MoveError wraps a rejection with the context of the move that caused it.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply the move would have been (0 if not applicable)
	From  string // Source square in algebraic form (if known)
	To    string // Destination square in algebraic form (if known)
	Piece string // The piece that was asked to move (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		move := e.From + e.To
		if e.Piece != "" {
			move = e.Piece + " " + move
		}
		parts = append(parts, fmt.Sprintf("move %s", move))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
