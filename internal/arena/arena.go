package arena

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Run plays cfg.Games games between engine A and engine B. Every opening is
// played twice with colors swapped. Each worker owns its own pair of engines.
func Run(ctx context.Context, logger *slog.Logger, cfg Config) (Stats, error) {
	logger.Info("arena started",
		"numCPU", runtime.NumCPU(),
		"gomaxprocs", runtime.GOMAXPROCS(0),
		"games", cfg.Games,
		"concurrency", cfg.Concurrency,
		"openingPlies", cfg.OpeningPlies,
		"seed", cfg.Seed)
	defer logger.Info("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, cfg, gameInfos)
	})

	g.Go(func() error {
		return showResults(ctx, logger, gameResults, &stats)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, logger, cfg, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stats, err
}

func playGames(
	ctx context.Context,
	logger *slog.Logger,
	cfg Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = cfg.NewEngineA()
	var engineB = cfg.NewEngineB()
	for gameInfo := range gameInfos {
		logger.Debug("started game", "game", gameInfo.gameNumber)
		var res, err = playGame(ctx, engineA, engineB, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
