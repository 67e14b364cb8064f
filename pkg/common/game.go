package common

import "errors"

var ErrGameOver = errors.New("game is over")

// Game tracks the board, the side to move and the moves played so far.
// A pass is recorded as MoveEmpty.
type Game struct {
	Board Board
	Side  Side
	Moves []Move
}

func NewGame() *Game {
	return &Game{
		Board: InitialBoard(),
		Side:  Black,
	}
}

// NewGameFromBoard starts a game from an arbitrary position.
func NewGameFromBoard(b Board, side Side) *Game {
	return &Game{
		Board: b,
		Side:  side,
	}
}

func (g *Game) LegalMoves() []Move {
	return LegalMoves(&g.Board, g.Side)
}

// Play applies m for the side to move and hands the turn over.
// MoveEmpty passes, which is only allowed when the side has no legal move.
func (g *Game) Play(m Move) error {
	if g.IsOver() {
		return ErrGameOver
	}
	if m == MoveEmpty {
		if HasLegalMove(&g.Board, g.Side) {
			return &InvalidMoveError{Move: m, Side: g.Side, Reason: "pass with legal moves available"}
		}
	} else {
		var child, err = ApplyMove(g.Board, m, g.Side)
		if err != nil {
			return err
		}
		g.Board = child
	}
	g.Moves = append(g.Moves, m)
	g.Side = g.Side.Opponent()
	return nil
}

// MustPass reports whether the side to move has to pass.
func (g *Game) MustPass() bool {
	return !g.IsOver() && !HasLegalMove(&g.Board, g.Side)
}

func (g *Game) IsOver() bool {
	return !HasLegalMove(&g.Board, Black) && !HasLegalMove(&g.Board, White)
}

// Score returns the disc counts of Black and White.
func (g *Game) Score() (black, white int) {
	return CountPieces(&g.Board, Black), CountPieces(&g.Board, White)
}

// Winner returns the side with more discs, Empty for a draw.
func (g *Game) Winner() Side {
	var black, white = g.Score()
	if black > white {
		return Black
	} else if white > black {
		return White
	}
	return Empty
}
