package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"isolation/config"
	"isolation/engine"
	"isolation/experiments"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
	"isolation/ui"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml config file (environment only if empty)")
	mode := flag.String("mode", "play", "play, selfplay or experiment")
	experiment := flag.String("experiment", "baseline", "Experiment to run: budget, depth or baseline")
	logLevel := flag.String("log-level", "", "Overrides the configured log level")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	setupLogging(cfg.LogLevel, *mode == "play", os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *mode {
	case "play":
		err = play(cfg)
	case "selfplay":
		err = selfPlay(ctx, cfg)
	case "experiment":
		err = runExperiment(ctx, cfg, *experiment)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("failed")
	}
}

// setupLogging writes to stderr, except during interactive play where logs
// would corrupt the terminal UI unless debugging was asked for. An unknown
// level falls back to info with a warning.
func setupLogging(level string, interactive bool, stderr io.Writer) {
	parsed, err := zerolog.ParseLevel(level)
	if level == "" {
		parsed, err = zerolog.InfoLevel, nil
	}
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly, NoColor: true})
	if err != nil {
		log.Warn().Err(err).Str("level", level).Msg("unknown log level, using info")
	}

	if interactive && parsed > zerolog.DebugLevel {
		log.Logger = log.Output(io.Discard)
	}
}

func newSearcher(cfg *config.Config, budget time.Duration, seed uint64) *searcher.AlphaBeta {
	options := []searcher.Option{
		searcher.WithDuration(budget),
		searcher.WithMaxDepth(cfg.MaxDepth),
		searcher.WithTieBreak(cfg.TieBreakProbability()),
		searcher.WithMetrics(),
	}
	if seed != 0 {
		options = append(options, searcher.WithSeed(seed))
	}
	return searcher.NewAlphaBeta(options...)
}

// offsetSeed keeps a zero seed (clock seeded) at zero.
func offsetSeed(seed, offset uint64) uint64 {
	if seed == 0 {
		return 0
	}
	return seed + offset
}

func play(cfg *config.Config) error {
	model := ui.New(termenv.NewOutput(os.Stdout), func(budget time.Duration) agent.Agent {
		return agent.NewSearchAgent(newSearcher(cfg, budget, cfg.Seed))
	})
	_, err := tea.NewProgram(model).Run()
	return err
}

func selfPlay(ctx context.Context, cfg *config.Config) error {
	first, err := cfg.First()
	if err != nil {
		return err
	}
	agents := map[game.Player]agent.Agent{
		game.PlayerA: agent.NewSearchAgent(newSearcher(cfg, cfg.TimeBudget, cfg.Seed)),
		game.PlayerB: agent.NewSearchAgent(newSearcher(cfg, cfg.TimeBudget, offsetSeed(cfg.Seed, 1))),
	}

	e := engine.NewLocalEngine(first, agents, engine.WithMaxTurns(cfg.MaxTurns), engine.WithBudget(cfg.TimeBudget))
	result, err := e.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Print(result.Record)
	if result.Finished {
		fmt.Printf("Player %s wins!!!\n", result.Winner)
	} else {
		fmt.Printf("No winner after %d moves\n", result.Game.TotalMoves)
	}
	return nil
}

func runExperiment(ctx context.Context, cfg *config.Config, name string) error {
	run := map[string]func(context.Context, *config.Config) (string, error){
		"budget":   experiments.RunBudgetExperiment,
		"depth":    experiments.RunDepthExperiment,
		"baseline": experiments.RunBaselineExperiment,
	}[name]
	if run == nil {
		return fmt.Errorf("unknown experiment %q", name)
	}

	dir, err := run(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msgf("%s experiment results stored", name)
	return nil
}
