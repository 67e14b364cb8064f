package arena

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/ChizhovVadim/CounterReversi/pkg/common"
)

func showResults(
	ctx context.Context,
	logger *slog.Logger,
	gameResults <-chan gameResult,
	stats *Stats,
) error {
	for gameResult := range gameResults {
		var winner = gameResult.winner()
		if winner == common.Empty {
			stats.Draws++
		} else if (winner == common.Black) == gameResult.gameInfo.engineAIsBlack {
			stats.Wins++
		} else {
			stats.Losses++
		}
		logger.Info("finished game",
			"game", gameResult.gameInfo.gameNumber,
			"result", gameResultString(&gameResult),
			"engineA", sideOfEngineA(gameResult.gameInfo).String(),
			"moves", movesString(gameResult.moves))
		var stat = ComputeStat(stats.Wins, stats.Losses, stats.Draws)
		logger.Info("score",
			"wins", stats.Wins,
			"losses", stats.Losses,
			"draws", stats.Draws,
			"fraction", math.Round(stat.WinningFraction*1000)/1000,
			"elo", math.Round(stat.EloDifference*10)/10,
			"los", math.Round(stat.LOS*1000)/10)
	}
	return nil
}

type GameStatistics struct {
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}

// ComputeStat is taken from https://www.chessprogramming.org/Match_Statistics
func ComputeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	if games == 0 {
		return GameStatistics{WinningFraction: 0.5, LOS: 0.5}
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5
	if wins+losses != 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return GameStatistics{
		WinningFraction: winningFraction,
		EloDifference:   eloDifference,
		LOS:             los,
	}
}

func sideOfEngineA(info gameInfo) common.Side {
	if info.engineAIsBlack {
		return common.Black
	}
	return common.White
}

func gameResultString(r *gameResult) string {
	switch r.winner() {
	case common.Black:
		return "1-0"
	case common.White:
		return "0-1"
	}
	return "1/2-1/2"
}

func movesString(ml []common.Move) string {
	var sb = &strings.Builder{}
	for i, m := range ml {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
