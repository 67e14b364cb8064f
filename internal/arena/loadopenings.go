package arena

import (
	"context"
	"math/rand"

	"github.com/ChizhovVadim/CounterReversi/pkg/common"
)

func loadOpenings(
	ctx context.Context,
	cfg Config,
	gameInfos chan<- gameInfo,
) error {
	var rnd = rand.New(rand.NewSource(cfg.Seed))
	var gameNumber = 0
	for gameNumber < cfg.Games {
		var opening = randomOpening(rnd, cfg.OpeningPlies)
		for _, engineAIsBlack := range [2]bool{true, false} {
			if gameNumber == cfg.Games {
				break
			}
			gameNumber++
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- gameInfo{opening: opening, engineAIsBlack: engineAIsBlack, gameNumber: gameNumber}:
			}
		}
	}
	return nil
}

// randomOpening plays uniformly random legal moves from the initial position.
// Positions that are already decided are thrown away.
func randomOpening(rnd *rand.Rand, plies int) common.Game {
	for {
		var g = common.NewGame()
		for i := 0; i < plies && !g.IsOver(); i++ {
			var move = common.MoveEmpty
			if ml := g.LegalMoves(); len(ml) != 0 {
				move = ml[rnd.Intn(len(ml))]
			}
			if err := g.Play(move); err != nil {
				panic(err)
			}
		}
		if !g.IsOver() {
			return *g
		}
	}
}
