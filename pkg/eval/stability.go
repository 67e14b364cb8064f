package eval

import (
	. "github.com/ChizhovVadim/CounterReversi/pkg/common"
)

// StableCount approximates the number of side discs that can never be flipped.
// An owned corner is stable, and so is every disc reachable from it along the
// corner's row or column through an unbroken run of side discs.
// Interior discs and runs anchored by the opponent are ignored.
func StableCount(b *Board, side Side) int {
	var stable [BoardSize][BoardSize]bool
	for _, corner := range Corners {
		var row, col = corner.Row(), corner.Col()
		if b[row][col] != side {
			continue
		}
		stable[row][col] = true
		for c := 0; c < BoardSize; c++ {
			if b[row][c] == side && sameRun(b, side, row, col, row, c) {
				stable[row][c] = true
			}
		}
		for r := 0; r < BoardSize; r++ {
			if b[r][col] == side && sameRun(b, side, row, col, r, col) {
				stable[r][col] = true
			}
		}
	}
	var n = 0
	for row := range stable {
		for col := range stable[row] {
			if stable[row][col] {
				n++
			}
		}
	}
	return n
}

// sameRun reports whether every cell on the straight segment between
// (r1, c1) and (r2, c2), both ends included, belongs to side.
// The two cells share a row or a column.
func sameRun(b *Board, side Side, r1, c1, r2, c2 int) bool {
	var rLo, rHi = Min(r1, r2), Max(r1, r2)
	var cLo, cHi = Min(c1, c2), Max(c1, c2)
	for r := rLo; r <= rHi; r++ {
		for c := cLo; c <= cHi; c++ {
			if b[r][c] != side {
				return false
			}
		}
	}
	return true
}
