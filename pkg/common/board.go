package common

import (
	"fmt"
	"strings"
	"unicode"
)

// Side is the content of a cell and, for Black and White, a player.
type Side int8

const (
	White Side = -1
	Empty Side = 0
	Black Side = 1
)

func (s Side) Opponent() Side {
	return -s
}

func (s Side) String() string {
	switch s {
	case Black:
		return "X"
	case White:
		return "O"
	case Empty:
		return "-"
	}
	return "?"
}

func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X", "B", "BLACK":
		return Black, nil
	case "O", "W", "WHITE":
		return White, nil
	}
	return Empty, fmt.Errorf("bad side %q", s)
}

// Board is an 8x8 grid indexed [row][col]. It is a value: copies never share cells.
type Board [BoardSize][BoardSize]Side

const InitialBoardString = "" +
	"--------" +
	"--------" +
	"--------" +
	"---OX---" +
	"---XO---" +
	"--------" +
	"--------" +
	"--------"

func InitialBoard() Board {
	var b Board
	b[3][3], b[4][4] = White, White
	b[3][4], b[4][3] = Black, Black
	return b
}

func (b *Board) At(m Move) Side {
	return b[m.Row()][m.Col()]
}

// DiscCount returns the number of occupied cells.
func (b *Board) DiscCount() int {
	var n = 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] != Empty {
				n++
			}
		}
	}
	return n
}

// ParseBoard reads 64 cells in row-major order. X is Black, O is White,
// '-' or '.' is empty. Whitespace is ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	var n = 0
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			continue
		}
		if n >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("board has more than %v cells", BoardSize*BoardSize)
		}
		var side Side
		switch unicode.ToUpper(ch) {
		case 'X', 'B', '*':
			side = Black
		case 'O', 'W':
			side = White
		case '-', '.':
			side = Empty
		default:
			return Board{}, fmt.Errorf("bad cell %q at %v", ch, n)
		}
		b[n/BoardSize][n%BoardSize] = side
		n++
	}
	if n != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("board has %v cells, want %v", n, BoardSize*BoardSize)
	}
	return b, nil
}

// String is the compact 64 character form accepted by ParseBoard.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(b[row][col].String())
		}
	}
	return sb.String()
}

// Pretty renders the board with coordinates, one row per line.
func (b Board) Pretty() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(rankNames[row])
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
