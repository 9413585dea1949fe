package experiments

import (
	"context"
	"fmt"
	"isolation/config"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RunBudgetExperiment pairs agents with growing time budgets against a
// baseline using the configured budget.
func RunBudgetExperiment(ctx context.Context, cfg *config.Config) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Duration: cfg.TimeBudget, MaxDepth: cfg.MaxDepth, TieBreak: cfg.TieBreakProbability()}
	budgetConfigs := []metrics.AgentConfig{
		{ID: 1, Duration: searcher.MinBudget, MaxDepth: cfg.MaxDepth, TieBreak: baseline.TieBreak},
		{ID: 2, Duration: time.Second, MaxDepth: cfg.MaxDepth, TieBreak: baseline.TieBreak},
		{ID: 3, Duration: 2 * time.Second, MaxDepth: cfg.MaxDepth, TieBreak: baseline.TieBreak},
		{ID: 4, Duration: 4 * time.Second, MaxDepth: cfg.MaxDepth, TieBreak: baseline.TieBreak},
	}

	return runExperiment(ctx, cfg, "budget", append(budgetConfigs, baseline), versus(baseline, budgetConfigs))
}

// RunDepthExperiment pairs depth capped agents against the uncapped baseline.
// The budget is generous so the depth cap, not the clock, ends each search.
func RunDepthExperiment(ctx context.Context, cfg *config.Config) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Duration: cfg.TimeBudget, MaxDepth: cfg.MaxDepth, TieBreak: cfg.TieBreakProbability()}
	depthConfigs := []metrics.AgentConfig{}
	for i, depth := range []int{1, 2, 4, 6} {
		depthConfigs = append(depthConfigs, metrics.AgentConfig{ID: i + 1, Duration: cfg.TimeBudget, MaxDepth: depth, TieBreak: baseline.TieBreak})
	}

	return runExperiment(ctx, cfg, "depth", append(depthConfigs, baseline), versus(baseline, depthConfigs))
}

// RunBaselineExperiment measures the searcher against a uniformly random mover.
func RunBaselineExperiment(ctx context.Context, cfg *config.Config) (string, error) {
	random := metrics.AgentConfig{ID: 0, Random: true}
	search := metrics.AgentConfig{ID: 1, Duration: cfg.TimeBudget, MaxDepth: cfg.MaxDepth, TieBreak: cfg.TieBreakProbability()}

	return runExperiment(ctx, cfg, "baseline", []metrics.AgentConfig{search, random}, versus(random, []metrics.AgentConfig{search}))
}

// versus pairs the baseline (playing O) with each contender (playing X).
func versus(baseline metrics.AgentConfig, contenders []metrics.AgentConfig) [][]metrics.AgentConfig {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range contenders {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}
	return matchUps
}

func runExperiment(ctx context.Context, cfg *config.Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Experiment.Games; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, cfg.Experiment.Games)

			// Alternate the starting player between games
			first := game.PlayerA
			if i%2 == 1 {
				first = game.PlayerB
			}

			count++
			result, err := runGame(ctx, cfg, first, config1, config2, uint64(count))
			if err != nil {
				return "", fmt.Errorf("%s experiment game %d: %w", name, count, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.Game.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(cfg.Experiment.OutputDir, name, configs, gameRecords, moveRecords)
	if err != nil {
		return "", fmt.Errorf("%s experiment: %w", name, err)
	}
	return dir, nil
}

// store writes the experiment metadata and results and returns their directory.
func store(root, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays config1 as X against config2 as O.
func runGame(ctx context.Context, cfg *config.Config, first game.Player, config1, config2 metrics.AgentConfig, id uint64) (engine.Result, error) {
	agents := map[game.Player]agent.Agent{
		game.PlayerA: createAgent(config1, seed(cfg.Seed, 2*id)),
		game.PlayerB: createAgent(config2, seed(cfg.Seed, 2*id+1)),
	}
	e := engine.NewLocalEngine(first, agents, engine.WithMaxTurns(cfg.MaxTurns), engine.WithBudget(config1.Duration))

	return e.Run(ctx)
}

// seed derives a per agent seed, or zero to seed from the clock.
func seed(base, offset uint64) uint64 {
	if base == 0 {
		return 0
	}
	return base + offset
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	var random searcher.Random
	if seed != 0 {
		random = rand.New(rand.NewSource(seed))
	}

	if config.Random {
		return agent.NewRandomAgent(random)
	}

	options := []searcher.Option{}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if random != nil {
		options = append(options, searcher.WithRandom(random))
	}

	options = append(options, searcher.WithTieBreak(config.TieBreak), searcher.WithMetrics())
	return agent.NewSearchAgent(searcher.NewAlphaBeta(options...))
}
