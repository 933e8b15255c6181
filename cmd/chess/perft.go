package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// runPerft counts the legal move tree from the configured setup.
func runPerft(ctx context.Context, cfg *config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	board, colour, depth := g.Board(), g.PlayerColour(), cfg.PerftDepth
	start := time.Now()

	var nodes uint64
	if cfg.Divide {
		entries, err := engine.Divide(ctx, board, colour, depth)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(cfg.OutputFile, "%v: %d\n", e.Move, e.Nodes)
			nodes += e.Nodes
		}
		fmt.Fprintln(cfg.OutputFile)
	} else {
		nodes, err = engine.Perft(ctx, board, colour, depth)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes)
	cfg.Logf(config.Summary, "perft(%d) %d nodes in %v\n", depth, nodes, time.Since(start).Round(time.Millisecond))
	return nil
}
