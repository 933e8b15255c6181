package engine

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateLegal checks a move completely: Validate, then the self-check
// filter. On success it returns the move and the board after it.
func ValidateLegal(board chess.Board, colour chess.Colour, from, to chess.Position) (chess.Move, chess.Board, error) {
	if err := Validate(board, colour, from, to); err != nil {
		return chess.Move{}, board, err
	}
	move, next, err := tryMove(board, colour, from, to)
	if err != nil {
		return chess.Move{}, board, fmt.Errorf("%v: %w", move, err)
	}
	return move, next, nil
}

// Play is ValidateLegal for callers that attach their own context: the
// returned error is the bare failure sentinel (or ErrNoKingFound).
func Play(board chess.Board, colour chess.Colour, from, to chess.Position) (chess.Move, chess.Board, error) {
	if err := validate(board, colour, from, to); err != nil {
		return chess.Move{}, board, err
	}
	return tryMove(board, colour, from, to)
}

// AllLegalMoves returns every move for colour that is geometrically legal and
// does not leave colour's own king in check. The result may be empty.
func AllLegalMoves(board chess.Board, colour chess.Colour) ([]chess.Move, error) {
	var moves []chess.Move
	for _, from := range board.PiecesOf(colour) {
		fromMoves, err := legalMovesFrom(board, colour, from, moves)
		if err != nil {
			return nil, err
		}
		moves = fromMoves
	}
	return moves, nil
}

// LegalMovesFrom returns the legal moves of the piece on from. It is empty if
// from holds no piece of colour.
func LegalMovesFrom(board chess.Board, colour chess.Colour, from chess.Position) ([]chess.Move, error) {
	return legalMovesFrom(board, colour, from, nil)
}

func legalMovesFrom(board chess.Board, colour chess.Colour, from chess.Position, moves []chess.Move) ([]chess.Move, error) {
	for _, to := range squares {
		if !IsGeometricallyLegal(board, colour, from, to) {
			continue
		}
		move, _, err := tryMove(board, colour, from, to)
		if err == nil {
			moves = append(moves, move)
			continue
		}
		if !isSelfCheck(err) {
			return nil, err
		}
	}
	return moves, nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board chess.Board, colour chess.Colour) (bool, error) {
	for _, from := range board.PiecesOf(colour) {
		for _, to := range squares {
			if !IsGeometricallyLegal(board, colour, from, to) {
				continue
			}
			_, _, err := tryMove(board, colour, from, to)
			if err == nil {
				return true, nil
			}
			if !isSelfCheck(err) {
				return false, err
			}
		}
	}
	return false, nil
}

// tryMove makes a move on a copy of the board and checks if it leaves the king
// in check. It expects the move to be geometrically legal already. The
// returned move is filled in whenever the source square is occupied.
func tryMove(board chess.Board, colour chess.Colour, from, to chess.Position) (chess.Move, chess.Board, error) {
	move, err := chess.NewMove(board, from, to)
	if err != nil {
		return chess.Move{}, board, err
	}
	next, err := board.ApplyMove(move)
	if err != nil {
		return chess.Move{}, board, err
	}

	inCheck, err := IsInCheck(next, colour)
	if err != nil {
		return chess.Move{}, board, err
	}
	if inCheck {
		return move, board, errors.ErrSelfCheck
	}
	return move, next, nil
}

func isSelfCheck(err error) bool {
	return stderrors.Is(err, errors.ErrSelfCheck)
}
