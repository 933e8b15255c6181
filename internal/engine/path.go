package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// lineOfSight returns the squares strictly between from and to along a
// straight or diagonal line. It returns nil for moves that are neither,
// and for adjacent squares.
func lineOfSight(from, to chess.Position) []chess.Position {
	rankDiff := to.Rank - from.Rank
	fileDiff := to.File - from.File
	if !isDiagonal(abs(rankDiff), abs(fileDiff)) && !isStraight(abs(rankDiff), abs(fileDiff)) {
		return nil
	}

	rankDir := sign(rankDiff)
	fileDir := sign(fileDiff)

	var between []chess.Position
	for p := from.Offset(rankDir, fileDir); p != to; p = p.Offset(rankDir, fileDir) {
		between = append(between, p)
	}
	return between
}

// isPathClear checks if every square between from and to is empty.
func isPathClear(board chess.Board, from, to chess.Position) bool {
	for _, p := range lineOfSight(from, to) {
		if !board.IsEmpty(p) {
			return false
		}
	}
	return true
}
