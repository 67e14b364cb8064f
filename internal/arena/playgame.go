package arena

import (
	"context"
	"fmt"

	"github.com/ChizhovVadim/CounterReversi/pkg/common"
)

func playGame(
	ctx context.Context,
	engineA, engineB IEngine,
	info gameInfo,
) (gameResult, error) {
	var game = info.opening
	game.Moves = append([]common.Move(nil), info.opening.Moves...)

	for !game.IsOver() {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		if game.MustPass() {
			if err := game.Play(common.MoveEmpty); err != nil {
				return gameResult{}, err
			}
			continue
		}
		var eng IEngine
		if (game.Side == common.Black) == info.engineAIsBlack {
			eng = engineA
		} else {
			eng = engineB
		}
		var searchResult = eng.Search(ctx, game.Board, game.Side)
		if !common.ContainsMove(game.LegalMoves(), searchResult.Move) {
			return gameResult{}, fmt.Errorf("game %v: bad move %v for %v", info.gameNumber, searchResult.Move, game.Side)
		}
		if err := game.Play(searchResult.Move); err != nil {
			return gameResult{}, err
		}
	}

	var black, white = game.Score()
	return gameResult{
		gameInfo: info,
		moves:    game.Moves,
		black:    black,
		white:    white,
	}, nil
}
