package arena

import (
	"context"

	"github.com/ChizhovVadim/CounterReversi/pkg/common"
	"github.com/ChizhovVadim/CounterReversi/pkg/engine"
)

type IEngine interface {
	Search(ctx context.Context, b common.Board, side common.Side) engine.SearchInfo
}

type Config struct {
	Games        int
	Concurrency  int
	OpeningPlies int
	Seed         int64
	NewEngineA   func() IEngine
	NewEngineB   func() IEngine
}

type gameInfo struct {
	opening        common.Game
	engineAIsBlack bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []common.Move
	black    int
	white    int
}

func (r *gameResult) winner() common.Side {
	if r.black > r.white {
		return common.Black
	} else if r.white > r.black {
		return common.White
	}
	return common.Empty
}

// Stats counts results from engine A's point of view.
type Stats struct {
	Wins   int
	Losses int
	Draws  int
}

func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Draws
}
