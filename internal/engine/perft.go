package engine

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree of the given depth,
// with colour to move at the root. Root moves are counted concurrently.
func Perft(ctx context.Context, board chess.Board, colour chess.Colour, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	entries, err := Divide(ctx, board, colour, depth)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total, nil
}

// Divide returns the perft count below each legal root move, sorted by move.
func Divide(ctx context.Context, board chess.Board, colour chess.Colour, depth int) ([]DivideEntry, error) {
	moves, err := AllLegalMoves(board, colour)
	if err != nil {
		return nil, err
	}

	entries := make([]DivideEntry, len(moves))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			next, err := board.ApplyMove(move)
			if err != nil {
				return err
			}
			nodes, err := perft(ctx, next, colour.Opposite(), depth-1)
			if err != nil {
				return err
			}
			entries[i] = DivideEntry{Move: move, Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Move.String() < entries[b].Move.String()
	})
	return entries, nil
}

// perft is the sequential count used below the root.
func perft(ctx context.Context, board chess.Board, colour chess.Colour, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	moves, err := AllLegalMoves(board, colour)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, move := range moves {
		next, err := board.ApplyMove(move)
		if err != nil {
			return 0, err
		}
		n, err := perft(ctx, next, colour.Opposite(), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}
