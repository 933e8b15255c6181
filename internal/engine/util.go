package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// squares lists every position on the board once, a1 to h8.
var squares = chess.AllPositions()

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
