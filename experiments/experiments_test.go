package experiments

import (
	"context"
	"encoding/csv"
	"isolation/config"
	"isolation/experiments/metrics"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		MaxDepth:   200,
		Seed:       5,
		MaxTurns:   64,
		Experiment: config.Experiment{Games: 2, OutputDir: t.TempDir()},
	}
}

func TestRunExperiment(t *testing.T) {
	cfg := testConfig(t)
	shallow := metrics.AgentConfig{ID: 1, MaxDepth: 1}
	random := metrics.AgentConfig{ID: 0, Random: true}

	dir, err := runExperiment(context.Background(), cfg, "smoke", []metrics.AgentConfig{shallow, random}, versus(random, []metrics.AgentConfig{shallow}))

	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfg.Experiment.OutputDir, "smoke"), filepath.Dir(dir))

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 3, "Header plus both agents")

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 3, "Header plus one row per game")
	require.Equal(t, []string{"1", "1", "0", "X"}, games[1][:4], "First game starts with agent1 as X")
	require.Equal(t, []string{"2", "1", "0", "O"}, games[2][:4], "Second game alternates the starting player")
	for _, row := range games[1:] {
		require.Contains(t, []string{"X", "O"}, row[4], "Every game should finish")
	}

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 2)
	for _, row := range moves[1:] {
		if row[2] == "X" {
			require.Equal(t, "1", row[6], "Shallow agent stops after the first depth")
		}
	}
}

func TestRunExperimentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBaselineExperiment(ctx, testConfig(t))

	require.ErrorIs(t, err, context.Canceled)
}

func TestVersus(t *testing.T) {
	baseline := metrics.AgentConfig{ID: 0}
	contenders := []metrics.AgentConfig{{ID: 1}, {ID: 2}}

	matchUps := versus(baseline, contenders)

	require.Equal(t, [][]metrics.AgentConfig{{contenders[0], baseline}, {contenders[1], baseline}}, matchUps)
}
