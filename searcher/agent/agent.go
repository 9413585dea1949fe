package agent

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from the search
	FindMove(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error)
}
