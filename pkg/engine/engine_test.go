package engine

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ChizhovVadim/CounterReversi/pkg/common"
	"github.com/ChizhovVadim/CounterReversi/pkg/eval"
)

type evaluatorFunc func(b *Board, side Side) float64

func (f evaluatorFunc) Evaluate(b *Board, side Side) float64 {
	return f(b, side)
}

func mustParseBoard(t *testing.T, rows ...string) Board {
	t.Helper()
	var b, err = ParseBoard(strings.Join(rows, ""))
	require.NoError(t, err)
	return b
}

func farDeadline() time.Time {
	return time.Now().Add(time.Hour)
}

// minimax is the same search without pruning.
func (s *searcher) minimax(b *Board, depth int, maximizing bool) SearchResult {
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
		return SearchResult{Score: s.minimax(b, depth-1, !maximizing).Score, Move: MoveEmpty}
	}
	var best = SearchResult{Move: MoveEmpty, Score: math.Inf(1)}
	if maximizing {
		best.Score = math.Inf(-1)
	}
	for _, child := range s.orderMoves(b, ml, side, maximizing) {
		var score = s.minimax(&child.child, depth-1, !maximizing).Score
		if maximizing && score > best.Score || !maximizing && score < best.Score {
			best.Score = score
			best.Move = child.move
		}
	}
	return best
}

// randomPositions collects positions from seeded random games.
func randomPositions(t *testing.T, seed int64, games int) []*Game {
	t.Helper()
	var rnd = rand.New(rand.NewSource(seed))
	var result []*Game
	for i := 0; i < games; i++ {
		var g = NewGame()
		for !g.IsOver() {
			result = append(result, NewGameFromBoard(g.Board, g.Side))
			var ml = g.LegalMoves()
			var m = MoveEmpty
			if len(ml) != 0 {
				m = ml[rnd.Intn(len(ml))]
			}
			require.NoError(t, g.Play(m))
		}
	}
	return result
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	var positions = randomPositions(t, 11, 2)
	for i, g := range positions {
		if i%3 != 0 {
			continue
		}
		for depth := 1; depth <= 3; depth++ {
			var s = &searcher{
				evaluator: eval.NewEvaluationService(),
				rootSide:  g.Side,
				tm:        &timeManager{ctx: context.Background()},
			}
			var expected = s.minimax(&g.Board, depth, true)
			var actual = AlphaBeta(context.Background(), SearchParams{
				Board:    g.Board,
				Side:     g.Side,
				Depth:    depth,
				Deadline: farDeadline(),
			})
			require.Equal(t, expected.Score, actual.Score, "%v %v depth %v", g.Board, g.Side, depth)
			require.Equal(t, expected.Move, actual.Move, "%v %v depth %v", g.Board, g.Side, depth)
		}
	}
}

func TestAlphaBetaDepthOneIsGreedy(t *testing.T) {
	var checked = 0
	for _, g := range randomPositions(t, 5, 10) {
		var ml = g.LegalMoves()
		if len(ml) != 3 {
			continue
		}
		checked++
		var bestMove = MoveEmpty
		var bestScore = math.Inf(-1)
		for _, m := range ml {
			var child, err = ApplyMove(g.Board, m, g.Side)
			require.NoError(t, err)
			if score := eval.Evaluate(&child, g.Side); score > bestScore {
				bestScore, bestMove = score, m
			}
		}
		var result = AlphaBeta(context.Background(), SearchParams{
			Board: g.Board, Side: g.Side, Depth: 1, Deadline: farDeadline(),
		})
		require.Equal(t, bestMove, result.Move)
		require.Equal(t, bestScore, result.Score)
	}
	require.NotZero(t, checked)
}

func TestAlphaBetaTiesKeepGenerationOrder(t *testing.T) {
	var b = InitialBoard()
	var flat = evaluatorFunc(func(b *Board, side Side) float64 { return 0 })
	var result = AlphaBeta(context.Background(), SearchParams{
		Board: b, Side: Black, Depth: 2, Evaluator: flat,
	})
	assert.Equal(t, MakeMove(2, 3), result.Move)
	assert.Equal(t, 0.0, result.Score)
}

func TestAlphaBetaTerminal(t *testing.T) {
	var full = mustParseBoard(t,
		"XXXXXXXX", "XXXXXXXX", "XXXXXXXX", "XXXXXXXX",
		"XXXXXXXX", "OOOOOOOO", "OOOOOOOO", "OOOOOOOO",
	)
	for _, depth := range []int{1, 3} {
		var black = AlphaBeta(context.Background(), SearchParams{Board: full, Side: Black, Depth: depth})
		assert.Equal(t, 1000.0*(40-24), black.Score)
		assert.Equal(t, MoveEmpty, black.Move)
		var white = AlphaBeta(context.Background(), SearchParams{Board: full, Side: White, Depth: depth})
		assert.Equal(t, 1000.0*(24-40), white.Score)
	}

	var blocked = mustParseBoard(t,
		"OOO-----", "--------", "--------", "--------",
		"--------", "--------", "--------", "--------",
	)
	var result = AlphaBeta(context.Background(), SearchParams{Board: blocked, Side: Black, Depth: 4})
	assert.Equal(t, -3000.0, result.Score)
}

func TestAlphaBetaPass(t *testing.T) {
	var b = mustParseBoard(t,
		"OX------", "--------", "--------", "--------",
		"--------", "--------", "--------", "--------",
	)
	var after, err = ApplyMove(b, MakeMove(0, 2), White)
	require.NoError(t, err)

	var result = AlphaBeta(context.Background(), SearchParams{Board: b, Side: Black, Depth: 2})
	assert.Equal(t, MoveEmpty, result.Move)
	assert.Equal(t, eval.Evaluate(&after, Black), result.Score)
}

func TestAlphaBetaDeadlineExpired(t *testing.T) {
	var b = InitialBoard()
	var result = AlphaBeta(context.Background(), SearchParams{
		Board:    b,
		Side:     Black,
		Depth:    6,
		Deadline: time.Now().Add(-time.Second),
	})
	assert.Equal(t, MoveEmpty, result.Move)
	assert.Equal(t, eval.Evaluate(&b, Black), result.Score)
	assert.Equal(t, int64(1), result.Nodes)
}

func TestAlphaBetaDeterministic(t *testing.T) {
	var positions = randomPositions(t, 23, 1)
	var g = positions[len(positions)/2]
	var params = SearchParams{Board: g.Board, Side: g.Side, Depth: 4, Deadline: farDeadline()}
	var first = AlphaBeta(context.Background(), params)
	var second = AlphaBeta(context.Background(), params)
	assert.Equal(t, first, second)
}

func TestSearchDepth(t *testing.T) {
	var tests = []struct {
		discs, moves, depth int
	}{
		{4, 4, 4},
		{19, 10, 4},
		{19, 11, 3},
		{20, 5, 5},
		{44, 8, 5},
		{44, 12, 4},
		{45, 8, 6},
		{49, 8, 6},
		{50, 8, 8},
		{50, 11, 7},
		{63, 1, 8},
	}
	for _, test := range tests {
		assert.Equal(t, test.depth, SearchDepth(test.discs, test.moves), "%+v", test)
	}

	var o = NewOptions()
	o.MaxDepth = 2
	assert.Equal(t, 2, o.searchDepth(50, 3))
}

func TestOpeningMove(t *testing.T) {
	var e = NewEngine(NewOptions(), nil)
	var info = e.Search(context.Background(), InitialBoard(), Black)
	assert.Equal(t, MakeMove(2, 3), info.Move)
	assert.Equal(t, ReasonOpening, info.Reason)
	assert.Zero(t, info.Nodes)

	info = e.Search(context.Background(), InitialBoard(), White)
	assert.Equal(t, ReasonSearch, info.Reason, "none of the preferred squares is legal for white")

	var m, ok = SelectMove(InitialBoard(), Black)
	assert.True(t, ok)
	assert.Equal(t, "d3", m.String())
}

func TestCornerGrab(t *testing.T) {
	var b = mustParseBoard(t,
		"--------",
		"-O------",
		"--X-----",
		"---OX---",
		"---XO---",
		"--------",
		"--------",
		"--------",
	)
	require.Greater(t, len(LegalMoves(&b, Black)), 1)

	var hatesCorners = func() Evaluator {
		return evaluatorFunc(func(b *Board, side Side) float64 {
			if b.At(SquareA1) == side {
				return -1000
			}
			return 0
		})
	}
	var e = NewEngine(NewOptions(), hatesCorners)
	var info = e.Search(context.Background(), b, Black)
	assert.Equal(t, SquareA1, info.Move)
	assert.Equal(t, ReasonCorner, info.Reason)

	var o = NewOptions()
	o.UseCornerGrab = false
	o.MaxDepth = 1
	info = NewEngine(o, hatesCorners).Search(context.Background(), b, Black)
	assert.NotEqual(t, SquareA1, info.Move)
	assert.Equal(t, ReasonSearch, info.Reason)
}

func TestForcedAndNoMove(t *testing.T) {
	var b = mustParseBoard(t,
		"OX------", "--------", "--------", "--------",
		"--------", "--------", "--------", "--------",
	)
	var e = NewEngine(NewOptions(), nil)

	var info = e.Search(context.Background(), b, White)
	assert.Equal(t, MakeMove(0, 2), info.Move)
	assert.Equal(t, ReasonForced, info.Reason)

	info = e.Search(context.Background(), b, Black)
	assert.Equal(t, MoveEmpty, info.Move)
	assert.Equal(t, ReasonNone, info.Reason)

	var _, ok = SelectMove(b, Black)
	assert.False(t, ok)
}

func TestSearchFallbackOnCancelledContext(t *testing.T) {
	var b, err = ApplyMove(InitialBoard(), MakeMove(2, 3), Black)
	require.NoError(t, err)
	var ml = LegalMoves(&b, White)
	require.Len(t, ml, 3)

	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var info = NewEngine(NewOptions(), nil).Search(ctx, b, White)
	assert.Equal(t, ReasonFallback, info.Reason)

	var bestMove = MoveEmpty
	var bestScore = math.Inf(-1)
	for _, m := range ml {
		var child, err = ApplyMove(b, m, White)
		require.NoError(t, err)
		if score := eval.Evaluate(&child, White); score > bestScore {
			bestScore, bestMove = score, m
		}
	}
	assert.Equal(t, bestMove, info.Move)
	assert.Equal(t, bestScore, info.Score)
}

func TestSearchRespectsTimeLimit(t *testing.T) {
	var positions = randomPositions(t, 29, 1)
	var g = positions[len(positions)/3]
	var o = NewOptions()
	o.TimeLimit = 50 * time.Millisecond
	o.UseCornerGrab = false
	var info = NewEngine(o, nil).Search(context.Background(), g.Board, g.Side)
	if len(g.LegalMoves()) > 1 {
		assert.True(t, IsLegal(&g.Board, info.Move, g.Side))
	}
	assert.Less(t, info.Time, 2*time.Second)
}

func TestTimeManagerUsesEarlierDeadline(t *testing.T) {
	var start = time.Now()
	var ctx, cancel = context.WithDeadline(context.Background(), start.Add(time.Second))
	defer cancel()

	var tm = newTimeManager(ctx, start, time.Hour)
	assert.Equal(t, start.Add(time.Second), tm.Deadline())
	assert.False(t, tm.IsDone())

	tm = newTimeManager(context.Background(), start, time.Millisecond)
	assert.Equal(t, start.Add(time.Millisecond), tm.Deadline())

	tm = newTimeManager(context.Background(), start.Add(-time.Minute), time.Millisecond)
	assert.True(t, tm.IsDone())
}
