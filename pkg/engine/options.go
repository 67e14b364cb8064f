package engine

import (
	"time"

	"github.com/ChizhovVadim/CounterReversi/pkg/common"
)

const (
	DefaultTimeLimit = 2500 * time.Millisecond
	MinDepth         = 3
	wideBranching    = 10
)

// OpeningMoves are tried in order on the very first move of the game.
var OpeningMoves = []common.Move{
	common.MakeMove(2, 3),
	common.MakeMove(3, 2),
	common.MakeMove(4, 5),
	common.MakeMove(5, 4),
}

type Options struct {
	TimeLimit       time.Duration
	MaxDepth        int // caps the depth schedule when > 0
	UseOpeningMoves bool
	UseCornerGrab   bool
}

func NewOptions() Options {
	return Options{
		TimeLimit:       DefaultTimeLimit,
		MaxDepth:        0,
		UseOpeningMoves: true,
		UseCornerGrab:   true,
	}
}

// SearchDepth picks the search depth from the number of discs on the board
// and the number of legal moves at the root.
func SearchDepth(discs, moves int) int {
	var depth int
	switch {
	case discs < 20:
		depth = 4
	case discs < 45:
		depth = 5
	case discs < 50:
		depth = 6
	default:
		depth = 8
	}
	if moves > wideBranching {
		depth = common.Max(MinDepth, depth-1)
	}
	return depth
}

func (o *Options) searchDepth(discs, moves int) int {
	var depth = SearchDepth(discs, moves)
	if o.MaxDepth > 0 {
		depth = common.Min(depth, o.MaxDepth)
	}
	return depth
}
