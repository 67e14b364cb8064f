package eval

import (
	"fmt"
	"strings"

	. "github.com/ChizhovVadim/CounterReversi/pkg/common"
)

var positionValues = [BoardSize][BoardSize]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

const (
	weightPosition  = 0.5
	weightMobility  = 2.0
	weightCorner    = 3.0
	weightStability = 1.5
	weightEdge      = 0.8

	cornerBonus     = 25
	xSquarePenalty  = 15
	stableDiscBonus = 15
	edgeDiscBonus   = 2
	mobilityScale   = 100
)

// PieceWeight scales the raw disc difference by game phase.
// Disc count matters little in the opening and most at the end.
func PieceWeight(discs int) float64 {
	if discs < 20 {
		return 0.1
	}
	if discs < 45 {
		return 0.3
	}
	return 1.0
}

// Components is the breakdown of one evaluation. Raw values are
// side-minus-opponent before weighting.
type Components struct {
	Discs       int
	PieceDiff   int
	PieceWeight float64
	Position    int
	Mobility    float64
	Corner      int
	Stability   int
	Edge        int
	Total       float64
}

func (c Components) String() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "discs %v\n", c.Discs)
	fmt.Fprintf(sb, "pieces    %6d x %.1f = %8.2f\n", c.PieceDiff, c.PieceWeight, c.PieceWeight*float64(c.PieceDiff))
	fmt.Fprintf(sb, "position  %6d x %.1f = %8.2f\n", c.Position, weightPosition, weightPosition*float64(c.Position))
	fmt.Fprintf(sb, "mobility  %6.1f x %.1f = %8.2f\n", c.Mobility, weightMobility, weightMobility*c.Mobility)
	fmt.Fprintf(sb, "corner    %6d x %.1f = %8.2f\n", c.Corner, weightCorner, weightCorner*float64(c.Corner))
	fmt.Fprintf(sb, "stability %6d x %.1f = %8.2f\n", c.Stability, weightStability, weightStability*float64(c.Stability))
	fmt.Fprintf(sb, "edge      %6d x %.1f = %8.2f\n", c.Edge, weightEdge, weightEdge*float64(c.Edge))
	fmt.Fprintf(sb, "total     %26.2f", c.Total)
	return sb.String()
}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate scores b from side's point of view; positive favors side.
func (e *EvaluationService) Evaluate(b *Board, side Side) float64 {
	return Evaluate(b, side)
}

func Evaluate(b *Board, side Side) float64 {
	return EvaluateDetailed(b, side).Total
}

func EvaluateDetailed(b *Board, side Side) Components {
	var opponent = side.Opponent()
	var c Components

	var my = CountPieces(b, side)
	var opp = CountPieces(b, opponent)
	c.Discs = my + opp
	c.PieceDiff = my - opp
	c.PieceWeight = PieceWeight(c.Discs)

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case side:
				c.Position += positionValues[row][col]
			case opponent:
				c.Position -= positionValues[row][col]
			}
		}
	}

	var myMoves = len(LegalMoves(b, side))
	var oppMoves = len(LegalMoves(b, opponent))
	if myMoves+oppMoves != 0 {
		c.Mobility = mobilityScale * float64(myMoves-oppMoves) / float64(myMoves+oppMoves)
	}

	c.Corner = cornerScore(b, side)

	c.Stability = stableDiscBonus * (StableCount(b, side) - StableCount(b, opponent))

	c.Edge = edgeScore(b, side)

	c.Total = c.PieceWeight*float64(c.PieceDiff) +
		weightPosition*float64(c.Position) +
		weightMobility*c.Mobility +
		weightCorner*float64(c.Corner) +
		weightStability*float64(c.Stability) +
		weightEdge*float64(c.Edge)
	return c
}

// cornerScore rewards owned corners and penalizes holding the X-square next to an open corner.
func cornerScore(b *Board, side Side) int {
	var score = 0
	for i, corner := range Corners {
		switch b.At(corner) {
		case side:
			score += cornerBonus
		case side.Opponent():
			score -= cornerBonus
		case Empty:
			switch b.At(XSquares[i]) {
			case side:
				score -= xSquarePenalty
			case side.Opponent():
				score += xSquarePenalty
			}
		}
	}
	return score
}

// edgeScore counts discs on the four border lines. Corners lie on two lines
// and are counted twice.
func edgeScore(b *Board, side Side) int {
	var score = 0
	var add = func(s Side) {
		if s == side {
			score += edgeDiscBonus
		} else if s == side.Opponent() {
			score -= edgeDiscBonus
		}
	}
	for i := 0; i < BoardSize; i++ {
		add(b[0][i])
		add(b[BoardSize-1][i])
		add(b[i][0])
		add(b[i][BoardSize-1])
	}
	return score
}
