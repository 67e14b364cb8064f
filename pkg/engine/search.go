package engine

import (
	"context"
	"math"
	"sort"
	"time"

	. "github.com/ChizhovVadim/CounterReversi/pkg/common"
	"github.com/ChizhovVadim/CounterReversi/pkg/eval"
)

// terminalScale makes a finished game outrank any heuristic score.
const terminalScale = 1000

type Evaluator interface {
	Evaluate(b *Board, side Side) float64
}

type SearchParams struct {
	Board     Board
	Side      Side
	Depth     int
	Deadline  time.Time // zero means no deadline
	Evaluator Evaluator // nil means eval.EvaluationService
}

// SearchResult is a minimax value from the root side's point of view and the
// move that reached it. Move is MoveEmpty when nothing was searched.
type SearchResult struct {
	Score float64
	Move  Move
	Nodes int64
}

type searcher struct {
	evaluator Evaluator
	rootSide  Side
	tm        *timeManager
	nodes     int64
}

type orderedMove struct {
	move  Move
	child Board
	score float64
}

// AlphaBeta runs a depth limited alpha-beta search for params.Side.
func AlphaBeta(ctx context.Context, params SearchParams) SearchResult {
	var evaluator = params.Evaluator
	if evaluator == nil {
		evaluator = eval.NewEvaluationService()
	}
	var s = &searcher{
		evaluator: evaluator,
		rootSide:  params.Side,
		tm:        &timeManager{ctx: ctx, deadline: params.Deadline},
	}
	var result = s.alphaBeta(&params.Board, params.Depth, math.Inf(-1), math.Inf(1), true)
	result.Nodes = s.nodes
	return result
}

func (s *searcher) alphaBeta(b *Board, depth int, alpha, beta float64, maximizing bool) SearchResult {
	s.nodes++
	if s.tm.IsDone() {
		return SearchResult{Score: s.evaluator.Evaluate(b, s.rootSide), Move: MoveEmpty}
	}
	if depth <= 0 {
		return SearchResult{Score: s.evaluator.Evaluate(b, s.rootSide), Move: MoveEmpty}
	}

	var side = s.rootSide
	if !maximizing {
		side = side.Opponent()
	}
	var ml = LegalMoves(b, side)

	if len(ml) == 0 {
		if !HasLegalMove(b, side.Opponent()) {
			var diff = CountPieces(b, s.rootSide) - CountPieces(b, s.rootSide.Opponent())
			return SearchResult{Score: terminalScale * float64(diff), Move: MoveEmpty}
		}
		var passed = s.alphaBeta(b, depth-1, alpha, beta, !maximizing)
		return SearchResult{Score: passed.Score, Move: MoveEmpty}
	}

	var children = s.orderMoves(b, ml, side, maximizing)

	var best = SearchResult{Move: MoveEmpty}
	if maximizing {
		best.Score = math.Inf(-1)
	} else {
		best.Score = math.Inf(1)
	}

	for i := range children {
		var child = &children[i]
		var score = s.alphaBeta(&child.child, depth-1, alpha, beta, !maximizing).Score
		if maximizing {
			if score > best.Score {
				best.Score = score
				best.Move = child.move
			}
			alpha = math.Max(alpha, score)
		} else {
			if score < best.Score {
				best.Score = score
				best.Move = child.move
			}
			beta = math.Min(beta, score)
		}
		if beta <= alpha {
			break
		}
	}

	return best
}

// orderMoves plays every move once and sorts by static score, best first for
// the side to move. Equal scores keep generation order.
func (s *searcher) orderMoves(b *Board, ml []Move, side Side, maximizing bool) []orderedMove {
	var children = make([]orderedMove, len(ml))
	for i, move := range ml {
		var child, err = ApplyMove(*b, move, side)
		if err != nil {
			panic(err)
		}
		children[i] = orderedMove{
			move:  move,
			child: child,
			score: s.evaluator.Evaluate(&child, s.rootSide),
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		if maximizing {
			return children[i].score > children[j].score
		}
		return children[i].score < children[j].score
	})
	return children
}
