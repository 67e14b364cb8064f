package common

import "fmt"

var directions = [8]struct{ row, col int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// InvalidMoveError reports an attempt to play a move that is not legal.
// It always indicates a caller bug: moves must come from LegalMoves.
type InvalidMoveError struct {
	Move   Move
	Side   Side
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %v for %v: %v", e.Move, e.Side, e.Reason)
}

func InBounds(row, col int) bool {
	return 0 <= row && row < BoardSize && 0 <= col && col < BoardSize
}

// capturesInDirection returns the length of the opponent run starting next to
// (row, col) when it is closed by a side disc, otherwise 0.
func (b *Board) capturesInDirection(row, col, dRow, dCol int, side Side) int {
	var opponent = side.Opponent()
	var r, c = row + dRow, col + dCol
	var n = 0
	for InBounds(r, c) && b[r][c] == opponent {
		r += dRow
		c += dCol
		n++
	}
	if n > 0 && InBounds(r, c) && b[r][c] == side {
		return n
	}
	return 0
}

func (b *Board) isLegal(row, col int, side Side) bool {
	if b[row][col] != Empty {
		return false
	}
	for _, dir := range directions {
		if b.capturesInDirection(row, col, dir.row, dir.col, side) > 0 {
			return true
		}
	}
	return false
}

// IsLegal reports whether side may play m on b.
func IsLegal(b *Board, m Move, side Side) bool {
	if m < 0 || int(m) >= BoardSize*BoardSize {
		return false
	}
	return b.isLegal(m.Row(), m.Col(), side)
}

// LegalMoves returns the legal moves of side in row-major order.
func LegalMoves(b *Board, side Side) []Move {
	var ml []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.isLegal(row, col, side) {
				ml = append(ml, MakeMove(row, col))
			}
		}
	}
	return ml
}

// HasLegalMove is LegalMoves(b, side) != empty without allocating.
func HasLegalMove(b *Board, side Side) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.isLegal(row, col, side) {
				return true
			}
		}
	}
	return false
}

// Flips returns the discs that playing m would turn over.
func Flips(b *Board, m Move, side Side) []Move {
	if !IsLegal(b, m, side) {
		return nil
	}
	var row, col = m.Row(), m.Col()
	var result []Move
	for _, dir := range directions {
		var n = b.capturesInDirection(row, col, dir.row, dir.col, side)
		for i := 1; i <= n; i++ {
			result = append(result, MakeMove(row+i*dir.row, col+i*dir.col))
		}
	}
	return result
}

// ApplyMove returns a copy of b with side played at m and every captured
// run flipped. b itself is never modified.
func ApplyMove(b Board, m Move, side Side) (Board, error) {
	if m < 0 || int(m) >= BoardSize*BoardSize {
		return b, &InvalidMoveError{Move: m, Side: side, Reason: "out of board"}
	}
	if side != Black && side != White {
		return b, &InvalidMoveError{Move: m, Side: side, Reason: "bad side"}
	}
	var row, col = m.Row(), m.Col()
	if b[row][col] != Empty {
		return b, &InvalidMoveError{Move: m, Side: side, Reason: "square is occupied"}
	}
	var flipped = 0
	for _, dir := range directions {
		var n = b.capturesInDirection(row, col, dir.row, dir.col, side)
		for i := 1; i <= n; i++ {
			b[row+i*dir.row][col+i*dir.col] = side
		}
		flipped += n
	}
	if flipped == 0 {
		return b, &InvalidMoveError{Move: m, Side: side, Reason: "no discs captured"}
	}
	b[row][col] = side
	return b, nil
}

// CountPieces returns the number of side discs on b.
func CountPieces(b *Board, side Side) int {
	var n = 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == side {
				n++
			}
		}
	}
	return n
}
