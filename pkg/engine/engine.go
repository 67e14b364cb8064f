package engine

import (
	"context"
	"math"
	"time"

	. "github.com/ChizhovVadim/CounterReversi/pkg/common"
	"github.com/ChizhovVadim/CounterReversi/pkg/eval"
)

// Reason tells which rule of the move policy produced a decision.
type Reason string

const (
	ReasonNone     Reason = "none"
	ReasonForced   Reason = "forced"
	ReasonOpening  Reason = "opening"
	ReasonCorner   Reason = "corner"
	ReasonSearch   Reason = "search"
	ReasonFallback Reason = "fallback"
)

type SearchInfo struct {
	Move   Move
	Score  float64
	Depth  int
	Nodes  int64
	Time   time.Duration
	Reason Reason
}

type Engine struct {
	Options     Options
	evalBuilder func() Evaluator
	evaluator   Evaluator
}

// NewEngine creates an engine. A nil evalBuilder selects the default evaluation.
func NewEngine(options Options, evalBuilder func() Evaluator) *Engine {
	if evalBuilder == nil {
		evalBuilder = func() Evaluator {
			return eval.NewEvaluationService()
		}
	}
	return &Engine{
		Options:     options,
		evalBuilder: evalBuilder,
	}
}

func (e *Engine) Prepare() {
	if e.evaluator == nil {
		e.evaluator = e.evalBuilder()
	}
}

// Search chooses a move for side. Move is MoveEmpty when side has no legal move.
// The decision never takes much longer than Options.TimeLimit; ctx can end it sooner.
func (e *Engine) Search(ctx context.Context, b Board, side Side) SearchInfo {
	var start = time.Now()
	e.Prepare()
	var info = e.decide(ctx, start, &b, side)
	info.Time = time.Since(start)
	return info
}

func (e *Engine) decide(ctx context.Context, start time.Time, b *Board, side Side) SearchInfo {
	var ml = LegalMoves(b, side)
	if len(ml) == 0 {
		return SearchInfo{Move: MoveEmpty, Reason: ReasonNone}
	}
	if len(ml) == 1 {
		return e.shortcut(b, side, ml[0], ReasonForced)
	}

	var discs = b.DiscCount()
	if e.Options.UseOpeningMoves && discs == 4 {
		for _, m := range OpeningMoves {
			if ContainsMove(ml, m) {
				return e.shortcut(b, side, m, ReasonOpening)
			}
		}
	}

	if e.Options.UseCornerGrab {
		for _, m := range ml {
			if m.IsCorner() {
				return e.shortcut(b, side, m, ReasonCorner)
			}
		}
	}

	var depth = e.Options.searchDepth(discs, len(ml))
	var tm = newTimeManager(ctx, start, e.Options.TimeLimit)
	var result = AlphaBeta(ctx, SearchParams{
		Board:     *b,
		Side:      side,
		Depth:     depth,
		Deadline:  tm.Deadline(),
		Evaluator: e.evaluator,
	})
	if result.Move == MoveEmpty {
		var info = e.greedy(b, side, ml)
		info.Nodes = result.Nodes
		return info
	}
	return SearchInfo{
		Move:   result.Move,
		Score:  result.Score,
		Depth:  depth,
		Nodes:  result.Nodes,
		Reason: ReasonSearch,
	}
}

func (e *Engine) shortcut(b *Board, side Side, m Move, reason Reason) SearchInfo {
	var child, err = ApplyMove(*b, m, side)
	if err != nil {
		panic(err)
	}
	return SearchInfo{
		Move:   m,
		Score:  e.evaluator.Evaluate(&child, side),
		Reason: reason,
	}
}

// greedy picks the move with the best static score one ply ahead.
// The first of several equal moves wins.
func (e *Engine) greedy(b *Board, side Side, ml []Move) SearchInfo {
	var best = SearchInfo{
		Move:   MoveEmpty,
		Score:  math.Inf(-1),
		Depth:  1,
		Reason: ReasonFallback,
	}
	for _, m := range ml {
		var child, err = ApplyMove(*b, m, side)
		if err != nil {
			panic(err)
		}
		var score = e.evaluator.Evaluate(&child, side)
		if score > best.Score {
			best.Score = score
			best.Move = m
		}
	}
	return best
}

// SelectMove chooses a move for side with default options.
// ok is false when side has no legal move.
func SelectMove(b Board, side Side) (move Move, ok bool) {
	var info = NewEngine(NewOptions(), nil).Search(context.Background(), b, side)
	return info.Move, info.Move != MoveEmpty
}
