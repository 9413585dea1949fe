package engine

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
)

// Result is the outcome of one game. Finished is false when the turn limit
// was reached before either player was boxed in.
type Result struct {
	Winner   game.Player
	Finished bool
	Record   string
	Game     metrics.GameMetric
	Moves    []metrics.MoveMetric
}

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run(ctx context.Context) (Result, error)
}
