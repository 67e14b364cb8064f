package common

import (
	"fmt"
	"strings"
)

const BoardSize = 8

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Move is a square index row*8+col. MoveEmpty stands for "no move" and for a pass.
type Move int8

const MoveEmpty Move = -1

const (
	SquareA1 Move = 0
	SquareH1 Move = 7
	SquareB2 Move = 9
	SquareG2 Move = 14
	SquareB7 Move = 49
	SquareG7 Move = 54
	SquareA8 Move = 56
	SquareH8 Move = 63
)

// Corners and XSquares are index-aligned: XSquares[i] is diagonally adjacent to Corners[i].
var (
	Corners  = [4]Move{SquareA1, SquareH1, SquareA8, SquareH8}
	XSquares = [4]Move{SquareB2, SquareG2, SquareB7, SquareG7}
)

func MakeMove(row, col int) Move {
	return Move(row*BoardSize + col)
}

func (m Move) Row() int {
	return int(m) / BoardSize
}

func (m Move) Col() int {
	return int(m) % BoardSize
}

func (m Move) IsCorner() bool {
	for _, c := range Corners {
		if m == c {
			return true
		}
	}
	return false
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func (m Move) String() string {
	if m == MoveEmpty {
		return "pass"
	}
	return string(fileNames[m.Col()]) + string(rankNames[m.Row()])
}

// ParseMove accepts "d3" style squares and "pass".
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pass" {
		return MoveEmpty, nil
	}
	if len(s) != 2 {
		return MoveEmpty, fmt.Errorf("bad move %q", s)
	}
	var col = strings.IndexByte(fileNames, s[0])
	var row = strings.IndexByte(rankNames, s[1])
	if col < 0 || row < 0 {
		return MoveEmpty, fmt.Errorf("bad move %q", s)
	}
	return MakeMove(row, col), nil
}
