package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/ChizhovVadim/CounterReversi/internal/arena"
	"github.com/ChizhovVadim/CounterReversi/internal/config"
	"github.com/ChizhovVadim/CounterReversi/internal/render"
	"github.com/ChizhovVadim/CounterReversi/internal/tui"
	"github.com/ChizhovVadim/CounterReversi/pkg/common"
	"github.com/ChizhovVadim/CounterReversi/pkg/engine"
	"github.com/ChizhovVadim/CounterReversi/pkg/eval"
	"github.com/ChizhovVadim/CounterReversi/pkg/protocol"
)

type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	var a = &app{}
	var rootCmd = &cobra.Command{
		Use:               "reversi",
		Short:             "Reversi engine with a text protocol, arena and terminal game",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runProtocol,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "protocol",
			Short: "Speak the text protocol on stdin/stdout",
			Args:  cobra.NoArgs,
			RunE:  a.runProtocol,
		},
		a.analyzeCmd(),
		a.arenaCmd(),
		a.playCmd(),
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE:  a.runConfig,
		},
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var cfg, err = config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug(name,
		"versionName", versionName,
		"buildDate", buildDate,
		"gitRevision", gitRevision,
		"runtimeVersion", runtime.Version(),
		"goarch", runtime.GOARCH,
		"goos", runtime.GOOS,
		"numCPU", runtime.NumCPU())
	return nil
}

func (a *app) runProtocol(cmd *cobra.Command, args []string) error {
	var eng = engine.NewEngine(a.cfg.Engine.Options(), nil)
	var p = protocol.New(name, author, versionName, eng,
		[]protocol.Option{
			&protocol.DurationOption{OptionName: "TimeLimit", Min: time.Millisecond, Max: time.Hour, Value: &eng.Options.TimeLimit},
			&protocol.IntOption{OptionName: "MaxDepth", Min: 0, Max: 60, Value: &eng.Options.MaxDepth},
			&protocol.BoolOption{OptionName: "OpeningMoves", Value: &eng.Options.UseOpeningMoves},
			&protocol.BoolOption{OptionName: "CornerGrab", Value: &eng.Options.UseCornerGrab},
		},
	)
	return p.Run(cmd.Context(), a.logger, cmd.InOrStdin(), cmd.OutOrStdout())
}

func (a *app) analyzeCmd() *cobra.Command {
	var boardFlag, sideFlag string
	var cmd = &cobra.Command{
		Use:   "analyze",
		Short: "Show legal moves, evaluation and the engine's choice for a position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var b, err = common.ParseBoard(boardFlag)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			side, err := common.ParseSide(sideFlag)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			var out = cmd.OutOrStdout()
			var g = common.NewGameFromBoard(b, side)
			if err := render.New(out).Fprint(out, g); err != nil {
				return err
			}
			fmt.Fprintf(out, "legal %v\n", movesString(g.LegalMoves()))
			fmt.Fprintln(out, eval.EvaluateDetailed(&b, side))

			var eng = engine.NewEngine(a.cfg.Engine.Options(), nil)
			var info = eng.Search(cmd.Context(), b, side)
			a.logger.Debug("search finished", "reason", info.Reason, "nodes", info.Nodes, "time", info.Time)
			fmt.Fprintf(out, "bestmove %v score %.2f depth %v reason %v\n",
				info.Move, info.Score, info.Depth, info.Reason)
			return nil
		},
	}
	cmd.Flags().StringVar(&boardFlag, "board", common.InitialBoardString, "64 squares, X black, O white, - empty")
	cmd.Flags().StringVar(&sideFlag, "side", "X", "side to move, X or O")
	return cmd
}

func (a *app) arenaCmd() *cobra.Command {
	var games, concurrency int
	var seed int64
	var cmd = &cobra.Command{
		Use:   "arena",
		Short: "Play engine A against engine B and report Elo difference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg = a.cfg.Arena
			if cmd.Flags().Changed("games") {
				cfg.Games = games
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cfg.Games <= 0 || cfg.Concurrency <= 0 {
				return fmt.Errorf("arena: games and concurrency must be positive")
			}
			var stats, err = arena.Run(cmd.Context(), a.logger, arena.Config{
				Games:        cfg.Games,
				Concurrency:  cfg.Concurrency,
				OpeningPlies: cfg.OpeningPlies,
				Seed:         cfg.Seed,
				NewEngineA:   newArenaEngine(cfg.EngineA),
				NewEngineB:   newArenaEngine(cfg.EngineB),
			})
			if err != nil {
				return fmt.Errorf("arena: %w", err)
			}
			var stat = arena.ComputeStat(stats.Wins, stats.Losses, stats.Draws)
			fmt.Fprintf(cmd.OutOrStdout(), "Score: %v - %v - %v  [%.3f] %v\n",
				stats.Wins, stats.Losses, stats.Draws, stat.WinningFraction, stats.Games())
			fmt.Fprintf(cmd.OutOrStdout(), "Elo difference: %.1f, LOS: %.1f %%\n",
				stat.EloDifference, stat.LOS*100)
			return nil
		},
	}
	cmd.Flags().IntVar(&games, "games", 0, "number of games (overrides config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "games played at once (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "opening seed (overrides config)")
	return cmd
}

func newArenaEngine(cfg config.EngineConfig) func() arena.IEngine {
	return func() arena.IEngine {
		var eng = engine.NewEngine(cfg.Options(), nil)
		eng.Prepare()
		return eng
	}
}

func (a *app) playCmd() *cobra.Command {
	var humanFlag string
	var cmd = &cobra.Command{
		Use:   "play",
		Short: "Play against the engine in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var human, err = common.ParseSide(humanFlag)
			if err != nil {
				return fmt.Errorf("play: %w", err)
			}
			var eng = engine.NewEngine(a.cfg.Engine.Options(), nil)
			return tui.Run(cmd.Context(), eng, human)
		},
	}
	cmd.Flags().StringVar(&humanFlag, "human", "X", "your side, X moves first")
	return cmd
}

func (a *app) runConfig(cmd *cobra.Command, args []string) error {
	var data, err = a.cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func movesString(ml []common.Move) string {
	if len(ml) == 0 {
		return "none"
	}
	var s = ml[0].String()
	for _, m := range ml[1:] {
		s += " " + m.String()
	}
	return s
}
