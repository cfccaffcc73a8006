package strategy

import (
	"reversi/game"

	"golang.org/x/exp/slices"
)

// Select picks the uppermost candidate, then the leftmost among those. No candidates means a pass.
func Select(candidates []game.Coordinates, side int) Move {
	if len(candidates) == 0 {
		return NoMove
	}
	best := slices.MinFunc(candidates, func(a, b game.Coordinates) int {
		if rows := a.RowIndex(side) - b.RowIndex(side); rows != 0 {
			return rows
		}
		return a.ColumnIndex(side) - b.ColumnIndex(side)
	})
	return Place(best)
}
