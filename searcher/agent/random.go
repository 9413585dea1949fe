package agent

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	random searcher.Random
}

// NewRandomAgent returns a baseline agent that picks uniformly among the legal
// moves. A nil source is seeded from the clock.
func NewRandomAgent(r searcher.Random) Agent {
	if r == nil {
		r = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return randomAgent{random: r}
}

func (a randomAgent) FindMove(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return sample(moves, a.random.Float64()), metrics.SearchMetric{}, nil
}

func sample(moves []game.Move, sampled float64) game.Move {
	i := int(sampled * float64(len(moves)))
	return moves[min(i, len(moves)-1)] // Fallback in case of rounding errors
}
